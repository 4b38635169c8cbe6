package cmd

import (
	"context"
	"fmt"
	"strings"

	"nuros-switch/internal/descriptor"
	"nuros-switch/internal/module"
	"nuros-switch/internal/switcher"
)

// Module actions. An omitted action means help.
const (
	actionList = "list"
	actionShow = "show"
	actionSet  = "set"
	actionHelp = "help"
)

var actionNames = strings.Join([]string{actionList, actionShow, actionSet, actionHelp}, ", ")

type unknownActionError struct {
	Action string
}

func (e *unknownActionError) Error() string {
	return fmt.Sprintf("unknown action '%s'", e.Action)
}

type missingTargetError struct {
	Module string
}

func (e *missingTargetError) Error() string {
	return "missing argument for 'set' action"
}

// runAction dispatches `<module> [action] [target]`.
func (a *app) runAction(ctx context.Context, reg *module.Registry, loader *module.Loader, engine *switcher.Engine, args []string) error {
	name := args[0]
	action := actionHelp
	if len(args) > 1 {
		action = args[1]
	}

	m, err := reg.Find(name)
	if err != nil {
		return err
	}
	a.log.Debug("running action", "module", m.Name, "action", action, "descriptor", m.Path, "scope", m.Scope)

	switch action {
	case actionList:
		listing, err := engine.List(ctx, m)
		if err != nil {
			return err
		}
		a.out.Listing(listing)

	case actionShow:
		status, err := engine.Show(ctx, m)
		if err != nil {
			return err
		}
		loader.LoadField(ctx, m, descriptor.FieldDescription)
		a.out.Status(status)

	case actionSet:
		if len(args) < 3 {
			return &missingTargetError{Module: m.Name}
		}
		res, err := engine.Set(ctx, m, args[2])
		if err != nil {
			return err
		}
		a.out.SetResult(res)

	case actionHelp:
		a.out.ModuleHelp(engine.Describe(ctx, m))

	default:
		return &unknownActionError{Action: action}
	}
	return nil
}
