package generation

// Result is the outcome of one generation call: either Generated or Failed.
type Result interface {
	isResult()
}

type Generated struct {
	Text string
}

type Failed struct {
	Err error
}

func (Generated) isResult() {}

func (Failed) isResult() {}
