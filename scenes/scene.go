package scenes

import "github.com/yohamta/donburi/ecs"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const layerDefault ecs.LayerID = iota
