package main

//go:generate go run ../../tools/gen-enum -type=Operation -generate-flag

// Operation selects which operator results the demo prints.
type Operation uint8

const (
	OperationAll          Operation = iota // name=all
	OperationComplement                    // name=complement
	OperationIntersection                  // name=intersection
	OperationUnion                         // name=union
	OperationComposition                   // name=composition
)

func (op Operation) includes(other Operation) bool {
	return op == OperationAll || op == other
}
