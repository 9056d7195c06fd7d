// Package proto holds the gRPC contract for the LLM sidecar.
// Generated code is produced by `make proto` and is not checked in.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
