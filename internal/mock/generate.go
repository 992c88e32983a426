package mock

//go:generate go run go.uber.org/mock/mockgen -destination decomposer.go -package mock github.com/buildbarn/bb-path-grammar/pkg/decomposer Decomposer
//go:generate go run go.uber.org/mock/mockgen -destination util.go -package mock github.com/buildbarn/bb-path-grammar/pkg/util ErrorLogger
