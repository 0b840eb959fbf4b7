package shell

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cjoudrey/gluahttp"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("comala_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// pushResult hands a handler's response back to the Lua stack; errors
// come back as an ERROR-prefixed string so scripts can check for them.
func pushResult(L *lua.LState, r *Response, err error) int {
	if err != nil {
		log.Err(err).Msg("error-executing-script-command")
		L.Push(lua.LString("ERROR: " + err.Error()))
		return 1
	}
	if r == nil {
		L.Push(lua.LString(""))
		return 1
	}
	L.Push(lua.LString(r.message))
	return 1
}

func New(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.newGame(&shellcmd{
		cmd: "new",
	})
	return pushResult(L, r, err)
}

func Show(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.show(&shellcmd{
		cmd: "show",
	})
	return pushResult(L, r, err)
}

func Rack(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.rack(&shellcmd{
		cmd:  "rack",
		args: strings.Split(lv, " "),
	})
	return pushResult(L, r, err)
}

func Play(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.play(&shellcmd{
		cmd:  "play",
		args: strings.Split(lv, " "),
	})
	return pushResult(L, r, err)
}

func Pass(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.pass(&shellcmd{
		cmd: "pass",
	})
	return pushResult(L, r, err)
}

func Exchange(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.exchange(&shellcmd{
		cmd:  "exchange",
		args: strings.Split(lv, " "),
	})
	return pushResult(L, r, err)
}

func Scores(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.scores(&shellcmd{
		cmd: "scores",
	})
	return pushResult(L, r, err)
}

func Gid(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.gid(&shellcmd{
		cmd: "gid",
	})
	return pushResult(L, r, err)
}

func Set(L *lua.LState) int {
	lv := L.ToString(1)
	sc := getShell(L)
	r, err := sc.set(&shellcmd{
		cmd:  "set",
		args: strings.Split(lv, " "),
	})
	return pushResult(L, r, err)
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	L.PreloadModule("http", gluahttp.NewHttpModule(&http.Client{}).Loader)
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("comala_shell", lsc)
	L.SetGlobal("comala_new", L.NewFunction(New))
	L.SetGlobal("comala_show", L.NewFunction(Show))
	L.SetGlobal("comala_rack", L.NewFunction(Rack))
	L.SetGlobal("comala_play", L.NewFunction(Play))
	L.SetGlobal("comala_pass", L.NewFunction(Pass))
	L.SetGlobal("comala_exchange", L.NewFunction(Exchange))
	L.SetGlobal("comala_scores", L.NewFunction(Scores))
	L.SetGlobal("comala_gid", L.NewFunction(Gid))
	L.SetGlobal("comala_set", L.NewFunction(Set))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("error-running-script")
		return nil, err
	}
	return nil, nil
}
