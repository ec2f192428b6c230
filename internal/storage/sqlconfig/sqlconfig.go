// Package sqlconfig contains the table gateways for the fintrack schema.
// Every gateway is built on a bob.Executor so the same type serves both the
// pooled database and a transaction-scoped writer.
package sqlconfig

func idArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
