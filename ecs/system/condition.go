package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gymroom/prefabs"
)

type conditionInput struct {
	Grounded bool
	Running  bool
	Holding  bool
	Distance float64
}

type compiledCondition struct {
	compiled *tengo.Compiled
	err      error
}

// conditions caches compiled condition scripts by path. A script that fails
// to load or run denies the interaction and is reported once.
type conditions struct {
	cache map[string]*compiledCondition
}

func newConditions() *conditions {
	return &conditions{cache: map[string]*compiledCondition{}}
}

func (c *conditions) Allow(path string, in conditionInput) bool {
	if strings.TrimSpace(path) == "" {
		return true
	}
	if c == nil {
		return false
	}
	path = prefabs.ScriptName(strings.TrimSpace(path))

	cond := c.load(path)
	if cond.err != nil {
		return false
	}

	if err := setConditionInput(cond.compiled, in); err != nil {
		c.fail(path, cond, err)
		return false
	}
	if err := cond.compiled.Run(); err != nil {
		c.fail(path, cond, err)
		return false
	}
	return cond.compiled.Get("allow").Bool()
}

func (c *conditions) Forget(path string) {
	if c == nil {
		return
	}
	delete(c.cache, prefabs.ScriptName(strings.TrimSpace(path)))
}

func (c *conditions) load(path string) *compiledCondition {
	if cond, ok := c.cache[path]; ok {
		return cond
	}

	cond := &compiledCondition{}
	c.cache[path] = cond

	src, err := prefabs.LoadScript(path)
	if err != nil {
		cond.err = err
		log.Printf("interaction: condition %s: %v", path, err)
		return cond
	}

	script := tengo.NewScript(src)
	_ = script.Add("grounded", false)
	_ = script.Add("running", false)
	_ = script.Add("holding", false)
	_ = script.Add("distance", 0.0)
	_ = script.Add("allow", true)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		cond.err = err
		log.Printf("interaction: condition %s: %v", path, err)
		return cond
	}
	cond.compiled = compiled
	return cond
}

func (c *conditions) fail(path string, cond *compiledCondition, err error) {
	cond.err = fmt.Errorf("run: %w", err)
	log.Printf("interaction: condition %s: %v", path, cond.err)
}

func setConditionInput(compiled *tengo.Compiled, in conditionInput) error {
	if err := compiled.Set("grounded", in.Grounded); err != nil {
		return err
	}
	if err := compiled.Set("running", in.Running); err != nil {
		return err
	}
	if err := compiled.Set("holding", in.Holding); err != nil {
		return err
	}
	if err := compiled.Set("distance", in.Distance); err != nil {
		return err
	}
	return compiled.Set("allow", true)
}
