package altair

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/cstroie/go8080/i8080"
)

// Breakpoints evaluates a set of Lua conditional-breakpoint expressions
// against CPU register/flag state before each Step, the way a CP/M-style
// debug monitor's conditional breakpoint command would. Each expression
// is compiled once and re-evaluated cheaply; this is host tooling, never
// something the core itself depends on.
type Breakpoints struct {
	state *lua.LState
	exprs []*breakpoint
}

type breakpoint struct {
	source string
	proto  *lua.FunctionProto
}

// NewBreakpoints creates an empty breakpoint set with its own Lua state.
func NewBreakpoints() *Breakpoints {
	return &Breakpoints{state: lua.NewState()}
}

// Close releases the underlying Lua state.
func (b *Breakpoints) Close() { b.state.Close() }

// Add compiles a Lua boolean expression, e.g. "pc == 0x0100 and a > 10",
// and adds it to the set. Returns an error if the expression doesn't
// compile.
func (b *Breakpoints) Add(expr string) error {
	source := "return (" + expr + ")"
	chunk, err := lua.Parse(strings.NewReader(source), "breakpoint")
	if err != nil {
		return fmt.Errorf("compile breakpoint %q: %w", expr, err)
	}
	proto, err := lua.Compile(chunk, "breakpoint")
	if err != nil {
		return fmt.Errorf("compile breakpoint %q: %w", expr, err)
	}
	b.exprs = append(b.exprs, &breakpoint{source: expr, proto: proto})
	return nil
}

// Hit reports whether any registered expression evaluates truthy against
// the CPU's current state.
func (b *Breakpoints) Hit(cpu *i8080.CPU) (bool, string) {
	b.bindState(cpu)
	for _, bp := range b.exprs {
		fn := b.state.NewFunctionFromProto(bp.proto)
		b.state.Push(fn)
		if err := b.state.PCall(0, 1, nil); err != nil {
			continue
		}
		ret := b.state.Get(-1)
		b.state.Pop(1)
		if lua.LVAsBool(ret) {
			return true, bp.source
		}
	}
	return false, ""
}

func (b *Breakpoints) bindState(cpu *i8080.CPU) {
	s := b.state
	s.SetGlobal("pc", lua.LNumber(cpu.PC))
	s.SetGlobal("sp", lua.LNumber(cpu.SP))
	s.SetGlobal("a", lua.LNumber(cpu.A))
	s.SetGlobal("b", lua.LNumber(cpu.B))
	s.SetGlobal("c", lua.LNumber(cpu.C))
	s.SetGlobal("d", lua.LNumber(cpu.D))
	s.SetGlobal("e", lua.LNumber(cpu.E))
	s.SetGlobal("h", lua.LNumber(cpu.H))
	s.SetGlobal("l", lua.LNumber(cpu.L))
	s.SetGlobal("z", lua.LBool(cpu.Flag(i8080.FlagZ)))
	s.SetGlobal("cy", lua.LBool(cpu.Flag(i8080.FlagCY)))
	s.SetGlobal("sflag", lua.LBool(cpu.Flag(i8080.FlagS)))
	s.SetGlobal("pflag", lua.LBool(cpu.Flag(i8080.FlagP)))
	s.SetGlobal("ac", lua.LBool(cpu.Flag(i8080.FlagAC)))
	s.SetGlobal("halted", lua.LBool(cpu.Halted()))
}
