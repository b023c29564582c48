// lua.go - scene scripting for mintdemo
//
// License: GPLv3 or later

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// sceneConfig holds the knobs a scene.lua script is allowed to set. It
// mirrors the handful of per-run constants the original cube example
// hardcoded (orbit radius, distance, rotation speed) as Lua globals so a
// demo variant doesn't need a recompile.
type sceneConfig struct {
	rotationSpeedX float64
	rotationSpeedY float64
	orbitRadius    float64
	orbitSpeed     float64
	distance       float64
	fovDegrees     float64
}

func defaultSceneConfig() sceneConfig {
	return sceneConfig{
		rotationSpeedX: 0.5,
		rotationSpeedY: 0.5,
		orbitRadius:    8.0,
		orbitSpeed:     -1.0,
		distance:       15,
		fovDegrees:     80,
	}
}

// loadSceneConfig runs a Lua script and reads back any of the globals it
// set, falling back to the defaults for anything left untouched.
func loadSceneConfig(path string) (sceneConfig, error) {
	cfg := defaultSceneConfig()
	if path == "" {
		return cfg, nil
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("log", L.NewFunction(luaLog))

	if err := L.DoFile(path); err != nil {
		return cfg, fmt.Errorf("run scene script %q: %w", path, err)
	}

	readNumber(L, "rotation_speed_x", &cfg.rotationSpeedX)
	readNumber(L, "rotation_speed_y", &cfg.rotationSpeedY)
	readNumber(L, "orbit_radius", &cfg.orbitRadius)
	readNumber(L, "orbit_speed", &cfg.orbitSpeed)
	readNumber(L, "distance", &cfg.distance)
	readNumber(L, "fov_degrees", &cfg.fovDegrees)

	return cfg, nil
}

func readNumber(L *lua.LState, name string, dst *float64) {
	v := L.GetGlobal(name)
	if n, ok := v.(lua.LNumber); ok {
		*dst = float64(n)
	}
}

// luaLog is exposed to scene scripts as log(msg) so they can report
// themselves through the same logger as the rest of the demo.
func luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	logger.Printf("scene: %s", msg)
	return 0
}
