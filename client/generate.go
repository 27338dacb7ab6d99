package client

//go:generate go run github.com/matryer/moq -out client_generated_mock.go -rm -stub -with-resets . Client
