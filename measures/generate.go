package measures

//go:generate go run ../cmd/quantitygen generate --config quantitygen.yaml
