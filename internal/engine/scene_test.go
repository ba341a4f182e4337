package engine

import "testing"

type fuse struct {
	BaseComponent
	left float32
}

func (f *fuse) Update(deltaTime float32) { f.left -= deltaTime }
func (f *fuse) Expired() bool            { return f.left <= 0 }

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)
	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
	if scene.FindByUID(obj.UID) != obj {
		t.Error("FindByUID failed")
	}
}

func TestSceneRemoveSubtree(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	scene.AddGameObject(parent)
	if scene.FindByUID(child.UID) != child {
		t.Error("Children should be registered with their root")
	}

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(parent.UID) != nil || scene.FindByUID(child.UID) != nil {
		t.Error("Removed subtree still in UID map")
	}
	if parent.Scene != nil || child.Scene != nil {
		t.Error("Removed subtree should not reference the scene")
	}

	// Removing twice is harmless.
	scene.RemoveGameObject(parent)
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Rocket1")
	obj2 := NewGameObject("Rocket2")
	obj3 := NewGameObject("Kart")

	obj1.Tags = []string{"flyable"}
	obj2.Tags = []string{"flyable"}
	obj3.Tags = []string{"kart"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	if got := len(scene.FindByTag("flyable")); got != 2 {
		t.Errorf("Expected 2 flyables, got %d", got)
	}
	if scene.FindByName("Kart") != obj3 {
		t.Error("FindByName failed")
	}
	if len(scene.FindByTag("nonexistent")) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneUpdateDropsExpired(t *testing.T) {
	scene := NewScene("Test")
	short := NewGameObject("Short")
	short.AddComponent(&fuse{left: 0.1})
	long := NewGameObject("Long")
	long.AddComponent(&fuse{left: 1})

	scene.AddGameObject(short)
	scene.AddGameObject(long)

	scene.Update(0.2)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != long {
		t.Errorf("Expected only the long-lived object to remain, got %d objects", len(scene.GameObjects))
	}
	if scene.FindByUID(short.UID) != nil {
		t.Error("Expired object still in UID map")
	}
}

func TestEventWithArgInvokesInOrder(t *testing.T) {
	var e EventWithArg[int]
	var got []int
	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(nil)
	e.AddListener(func(v int) { got = append(got, v*10) })

	e.Invoke(3)

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("Unexpected invocation order %v", got)
	}
}

func TestEventWithArgRemove(t *testing.T) {
	var e EventWithArg[int]
	var got []int
	removeFirst := e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) {
		got = append(got, v*10)
		removeFirst()
	})

	e.Invoke(1)
	e.Invoke(2)
	removeFirst()
	e.AddListener(nil)()

	want := []int{1, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}

	e.RemoveAllListeners()
	e.Invoke(3)
	if len(got) != 3 {
		t.Errorf("Listeners ran after RemoveAllListeners: %v", got)
	}
}
