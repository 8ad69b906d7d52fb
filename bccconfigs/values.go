package bccconfigs

import (
	"runtime"

	"github.com/reusee/bcc/cmds"
	"github.com/reusee/bcc/configs"
	"github.com/reusee/bcc/modes"
	"github.com/reusee/bcc/vars"
	"github.com/xyproto/env/v2"
)

// Flags win over environment variables, which win over config files.

// Optimize enables the tail trim when finishing a build.
type Optimize bool

var noOptimizeFlag = cmds.Switch("-no-optimize", "keep trailing instructions after the last output")

func (Module) Optimize(
	loader configs.Loader,
) Optimize {
	if *noOptimizeFlag || env.Bool("BCC_NO_OPTIMIZE") {
		return false
	}
	if v := configs.First[*bool](loader, "optimize"); v != nil {
		return Optimize(*v)
	}
	return true
}

// MaxSteps bounds interpreter runs. Zero means unbounded.
// Across config files the smallest nonzero limit wins, so a system wide file
// can cap local ones.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps", "instruction budget of the interpreter")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	var fromConfig int
	for n := range configs.All[int](loader, "max_steps") {
		if n > 0 && (fromConfig == 0 || n < fromConfig) {
			fromConfig = n
		}
	}
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		env.Int("BCC_MAX_STEPS", 0),
		fromConfig,
	))
}

// Jobs is the number of files compiled concurrently.
type Jobs int

var jobsFlag = cmds.Var[int]("-jobs", "files compiled at the same time")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(vars.FirstNonZero(
		*jobsFlag,
		env.Int("BCC_JOBS", 0),
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	))
}

// Checked makes builders verify that allocations are freed in LIFO order.
// Always on in development mode.
type Checked bool

var checkedFlag = cmds.Switch("-checked", "panic on out of order frees")

func (Module) Checked(
	loader configs.Loader,
	mode modes.Mode,
) Checked {
	if mode == modes.ModeDevelopment || *checkedFlag || env.Bool("BCC_CHECKED") {
		return true
	}
	return Checked(vars.DerefOrZero(configs.First[*bool](loader, "checked")))
}
