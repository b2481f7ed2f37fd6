package commands

import (
	"errors"
	"strings"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrUploadClientFileCommandIsNotConstructed = errors.New(
		"UploadClientFileCommand must be created via NewUploadClientFileCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("file name is required")
	ErrFileURLIsRequired  = errors.New("file url is required")
)

// UploadClientFileCommand attaches a file supplied by the customer (original
// art, references) to the art confirmation.
type UploadClientFileCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	file    art.FileInput
	actor   string

	guard guard.ConstructorGuard
}

// NewUploadClientFileCommand creates the request. An empty category defaults
// to original art.
func NewUploadClientFileCommand(orderID kernel.UUID, file art.FileInput, actor string) (UploadClientFileCommand, error) {
	if err := errors.Join(orderID.Validate(), validateFileInput(file)); err != nil {
		return UploadClientFileCommand{}, err
	}

	return UploadClientFileCommand{
		orderID: orderID,
		file:    file,
		actor:   actorOrDefault(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadClientFileCommand) Validate() error {
	return c.guard.Validate(ErrUploadClientFileCommandIsNotConstructed)
}

func (c UploadClientFileCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UploadClientFileCommand) File() art.FileInput {
	return c.file
}

func (c UploadClientFileCommand) Actor() string {
	return c.actor
}

func validateFileInput(f art.FileInput) error {
	var errList []error
	if strings.TrimSpace(f.Name) == "" {
		errList = append(errList, ErrFileNameIsRequired)
	}
	if strings.TrimSpace(f.URL) == "" {
		errList = append(errList, ErrFileURLIsRequired)
	}
	if f.Category != "" {
		errList = append(errList, f.Category.Validate())
	}
	return errors.Join(errList...)
}
