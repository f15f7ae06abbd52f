package scripting

import (
	"fmt"

	"github.com/sheepfold/sheep/internal/host"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding spawn scripts.
// Single-goroutine access only (tick loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua VM and runs the script at path.
func NewEngine(path string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	registerPartCosts(vm)

	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debug("loaded lua script", zap.String("file", path))
	return &Engine{vm: vm, log: log}, nil
}

// NewEngineFromString is NewEngine for an inline script.
func NewEngineFromString(src string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	registerPartCosts(vm)

	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	return &Engine{vm: vm, log: log}, nil
}

// registerPartCosts exposes PART_COST[name] so scripts can price bodies.
func registerPartCosts(vm *lua.LState) {
	t := vm.NewTable()
	for _, p := range []host.Part{
		host.PartMove, host.PartWork, host.PartCarry, host.PartAttack,
		host.PartRangedAttack, host.PartHeal, host.PartTough, host.PartClaim,
	} {
		t.RawSetString(string(p), lua.LNumber(p.Cost()))
	}
	vm.SetGlobal("PART_COST", t)
}

func (e *Engine) Close() {
	e.vm.Close()
}

// BodyPlan calls the Lua body_plan(energy_available) function. The script returns an
// array of part names; an empty array means "don't spawn this tick" and is reported as
// an error so the spawn is skipped.
func (e *Engine) BodyPlan(energyAvailable int) ([]host.Part, error) {
	fn := e.vm.GetGlobal("body_plan")
	if fn == lua.LNil {
		return nil, fmt.Errorf("lua function body_plan not found")
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(energyAvailable)); err != nil {
		return nil, fmt.Errorf("body_plan: %w", err)
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("body_plan returned %s, want table", ret.Type())
	}
	names := make([]string, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		names = append(names, lua.LVAsString(tbl.RawGetInt(i)))
	}
	body, err := host.ParseBody(names)
	if err != nil {
		return nil, fmt.Errorf("body_plan: %w", err)
	}
	return body, nil
}
