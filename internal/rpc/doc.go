// Package rpc declares the gRPC contract of the recipe store shared by the
// server handler and the client adapter.
//
// Messages are plain Go structs carried by a JSON codec registered under the
// "json" content subtype, so no protobuf generation step is needed. The
// service descriptor is declared by hand in the shape protoc-gen-go-grpc
// would emit.
package rpc
