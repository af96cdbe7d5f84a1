package convert

// Stage — этап сценария конвертации. Нужен для логов и для StageError.
type Stage string

const (
	StageAwaitingInput    Stage = "awaiting_input"
	StageValidating       Stage = "validating"
	StageConverting       Stage = "converting"
	StageResolvingSymbols Stage = "resolving_symbols"
	StageDone             Stage = "done"
)

// StageError — ошибка с этапом, на котором сценарий перешёл в состояние Error.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
