package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneWelcome = "welcome"
	ScenePlaying = "playing"
)

// SceneManager manages which screen is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// SceneManager 同时实现 Presenter：会话控制器通过它切换欢迎界面和答题界面。
type SceneManager struct {
	currentScene Scene
	currentName  string
	scenes       map[string]Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Register and Show to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[string]Scene),
	}
}

// Register 注册命名场景
func (sm *SceneManager) Register(name string, scene Scene) {
	sm.scenes[name] = scene
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentName = ""
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
}

// Show 切换到已注册的命名场景
//
// 返回：
//   - bool: 场景不存在时返回 false，当前场景保持不变
func (sm *SceneManager) Show(name string) bool {
	scene, ok := sm.scenes[name]
	if !ok || scene == nil {
		log.Printf("[SceneManager] 错误: 场景未注册: %s", name)
		return false
	}
	sm.SwitchTo(scene)
	sm.currentName = name
	return true
}

// ShowWelcome 切换到欢迎界面
func (sm *SceneManager) ShowWelcome() {
	sm.Show(SceneWelcome)
}

// ShowPlaying 切换到答题界面
func (sm *SceneManager) ShowPlaying() {
	sm.Show(ScenePlaying)
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前命名场景，通过 SwitchTo 直接切换时为空
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if scene := sm.GetCurrentScene(); scene != nil {
		scene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if scene := sm.GetCurrentScene(); scene != nil {
		scene.Draw(screen)
	}
}
