package intent

import "errors"

// ErrNoScenes is returned alongside an empty batch plan when no scene could be
// parsed from the prompt. Callers treat the empty plan as a no-op; the
// sentinel exists so the condition can be logged instead of passing silently.
var ErrNoScenes = errors.New("no scenes parsed from batch prompt")
