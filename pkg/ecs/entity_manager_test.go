package ecs

import "testing"

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	// 获取组件
	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 组件是指针，修改后再次获取应看到新值
	pos.X = 50
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 50 {
		t.Errorf("Component should be shared by pointer, got X=%f", again.X)
	}

	// 类型不同则查不到
	if _, found := GetComponent[*testVelocityComponent](em, id); found {
		t.Error("Velocity component should not be found")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})
	AddComponent(em, id3, &testPositionComponent{})
	AddComponent(em, id3, &testTagComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 2 || both[0] != id1 || both[1] != id3 {
		t.Errorf("GetEntitiesWith2 = %v, want [%d %d]", both, id1, id3)
	}

	tagged := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em)
	if len(tagged) != 1 || tagged[0] != id3 {
		t.Errorf("GetEntitiesWith3 = %v, want [%d]", tagged, id3)
	}
}

// TestAddComponentToUnknownEntity 对不存在的实体添加组件不会创建实体
func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, EntityID(42), &testPositionComponent{})

	if _, found := GetComponent[*testPositionComponent](em, EntityID(42)); found {
		t.Error("AddComponent should not create an unknown entity")
	}
	if ids := GetEntitiesWith2[*testPositionComponent, *testPositionComponent](em); len(ids) != 0 {
		t.Errorf("GetEntitiesWith2 = %v, want none", ids)
	}
}

// TestReplaceComponent 同类型组件会被替换
func TestReplaceComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{X: 1})
	AddComponent(em, id, &testPositionComponent{X: 2})

	pos, _ := GetComponent[*testPositionComponent](em, id)
	if pos.X != 2 {
		t.Errorf("X = %v, want 2 after replacement", pos.X)
	}
}
