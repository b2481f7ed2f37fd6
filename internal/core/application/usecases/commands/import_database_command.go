package commands

import (
	"errors"

	"decoflow/internal/core/application/exchange"
	"decoflow/internal/pkg/guard"
)

var (
	ErrImportDatabaseCommandIsNotConstructed = errors.New(
		"ImportDatabaseCommand must be created via NewImportDatabaseCommand constructor",
	)
)

// ImportDatabaseCommand replaces the whole order store with the contents of
// an export bundle.
type ImportDatabaseCommand struct { //nolint:recvcheck //using for validation
	bundle exchange.Bundle

	guard guard.ConstructorGuard
}

// NewImportDatabaseCommand decodes data as an export bundle. Malformed JSON
// and incompatible schema versions are rejected here, before any store is
// touched.
func NewImportDatabaseCommand(data []byte) (ImportDatabaseCommand, error) {
	bundle, err := exchange.Decode(data)
	if err != nil {
		return ImportDatabaseCommand{}, err
	}

	return ImportDatabaseCommand{
		bundle: bundle,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportDatabaseCommand) Validate() error {
	return c.guard.Validate(ErrImportDatabaseCommandIsNotConstructed)
}

func (c ImportDatabaseCommand) Bundle() exchange.Bundle {
	return c.bundle
}
