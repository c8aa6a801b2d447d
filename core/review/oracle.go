package review

import "errors"

// ErrAborted is returned by an Oracle that declines to continue reviewing.
// Decisions made before the abort stand; the pipeline proceeds with them.
var ErrAborted = errors.New("review aborted")

// Oracle judges whether two renderings of a same-named test are behaviorally
// equivalent. The pruner treats every answer as authoritative and never
// second-guesses it. Any error other than ErrAborted is fatal for the run.
type Oracle interface {
	Decide(name, fromA, fromB string) (bool, error)
}

// OracleFunc adapts a plain function to the Oracle interface so scripted
// callers can replace the interactive reviewer.
type OracleFunc func(name, fromA, fromB string) (bool, error)

// Decide calls f.
func (f OracleFunc) Decide(name, fromA, fromB string) (bool, error) {
	return f(name, fromA, fromB)
}
