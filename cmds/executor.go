package cmds

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/bcc/vars"
)

type Executor struct {
	commands map[string]*Command
	rest     *[]string
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage(os.Stderr)
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Rest makes the executor collect arguments that name no command, such as
// input file paths, instead of failing on them. Unknown arguments starting
// with '-' are still errors.
func (p *Executor) Rest() *[]string {
	if p.rest == nil {
		p.rest = new([]string)
	}
	return p.rest
}

var errorType = reflect.TypeFor[error]()

// Execute runs the commands named in args in order. A command taking one
// argument may also be written as name=value.
func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			if before, after, found := strings.Cut(name, "="); found {
				if c, ok := commands[before]; ok {
					name, command = before, c
					args = append([]string{after}, args...)
				}
			}
		}

		if command == nil {
			if p.rest != nil && !strings.HasPrefix(name, "-") {
				*p.rest = append(*p.rest, name)
				continue
			}
			if similar := closest(commands, name); similar != "" {
				return fmt.Errorf("unknown command: %s, did you mean %s", name, similar)
			}
			return fmt.Errorf("unknown command: %s", name)
		}

		var err error
		args, err = call(command, args)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = cmd
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// call invokes the command's function with arguments taken from args and
// returns the remaining ones.
func call(command *Command, args []string) ([]string, error) {
	if !command.Func.IsValid() {
		return args, nil
	}
	fnType := command.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := getArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := command.Func.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if t.Kind() == reflect.Pointer {
		ptr := reflect.New(t.Elem())
		if len(args) == 0 {
			// optional
			return ptr, nil
		}
		elem, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr.Elem().Set(elem)
		return ptr, nil
	}
	if len(args) == 0 {
		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	str := args[0]
	ret = reflect.New(t).Elem()
	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, nil
}

// closest returns the command name within two edits of name, if any.
func closest(commands map[string]*Command, name string) string {
	best := ""
	bestDistance := 3
	for candidate := range commands {
		d := distance(name, candidate)
		if d < bestDistance || d == bestDistance && candidate < best {
			best, bestDistance = candidate, d
		}
	}
	if bestDistance > 2 {
		return ""
	}
	return best
}

func distance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
