package exchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/pricing"
	"decoflow/internal/pkg/errs"

	"github.com/Masterminds/semver/v3"
)

const (
	// SchemaVersion is written into every bundle produced by Export.
	SchemaVersion = "1.0.0"

	// SupportedSchemas is the constraint an imported bundle must satisfy.
	SupportedSchemas = "^1"

	// Application names the producer in the metadata.
	Application = "decoflow"
)

var supported = semver.MustParse(SchemaVersion)

// Metadata describes a bundle.
type Metadata struct {
	SchemaVersion string    `json:"schemaVersion"`
	ExportedAt    time.Time `json:"exportedAt"`
	OrderCount    int       `json:"orderCount"`
	Application   string    `json:"application"`
}

// Schema lists the string literals of every enumeration in the records.
type Schema struct {
	Stages           []string `json:"stages"`
	ArtStatuses      []string `json:"artStatuses"`
	OverallStatuses  []string `json:"overallStatuses"`
	ProofStatuses    []string `json:"proofStatuses"`
	FileCategories   []string `json:"fileCategories"`
	RevisionActions  []string `json:"revisionActions"`
	DecorationTypes  []string `json:"decorationTypes"`
	StitchCountTiers []string `json:"stitchCountTiers"`
	DTFSizes         []string `json:"dtfSizes"`
	LeadSources      []string `json:"leadSources"`
	LeadTemperatures []string `json:"leadTemperatures"`
	ProductionFlags  []string `json:"productionFlags"`
	ChecklistFlags   []string `json:"checklistFlags"`
}

// Bundle is the export document.
type Bundle struct {
	Metadata Metadata         `json:"metadata"`
	Orders   []order.Snapshot `json:"orders"`
	Schema   Schema           `json:"schema"`
}

// NewBundle wraps orders into a bundle stamped with the current schema.
func NewBundle(orders []order.Snapshot, exportedAt time.Time) Bundle {
	if orders == nil {
		orders = []order.Snapshot{}
	}
	return Bundle{
		Metadata: Metadata{
			SchemaVersion: SchemaVersion,
			ExportedAt:    exportedAt,
			OrderCount:    len(orders),
			Application:   Application,
		},
		Orders: orders,
		Schema: CurrentSchema(),
	}
}

// CurrentSchema returns the enumeration literals this build understands.
func CurrentSchema() Schema {
	return Schema{
		Stages:           names(order.Stages()),
		ArtStatuses:      names(order.ArtStatuses()),
		OverallStatuses:  names(art.OverallStatuses()),
		ProofStatuses:    names(art.ProofStatuses()),
		FileCategories:   literals(art.FileCategories()),
		RevisionActions:  literals(art.RevisionActions()),
		DecorationTypes:  names(pricing.DecorationTypes()),
		StitchCountTiers: names([]pricing.StitchTier{pricing.StitchesUnder8k, pricing.Stitches8kTo12k, pricing.Stitches12kPlus}),
		DTFSizes:         names([]pricing.DTFSize{pricing.DTFStandard, pricing.DTFLarge}),
		LeadSources:      literals(order.LeadSources()),
		LeadTemperatures: literals(order.LeadTemperatures()),
		ProductionFlags:  literals(order.ProductionFlags()),
		ChecklistFlags:   literals(order.ChecklistFlags()),
	}
}

// Decode parses a bundle and checks its schema version. Unknown fields are
// rejected so that a typo in a hand-edited file does not silently drop data.
func Decode(data []byte) (Bundle, error) {
	var b Bundle
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return Bundle{}, errs.NewValidationError("bundle", []string{decodeProblem(err)})
	}
	if err := CheckSchemaVersion(b.Metadata.SchemaVersion); err != nil {
		return Bundle{}, err
	}
	if b.Orders == nil {
		b.Orders = []order.Snapshot{}
	}
	return b, nil
}

// CheckSchemaVersion reports whether v can be imported by this build.
func CheckSchemaVersion(v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError("metadata.schemaVersion")
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return errs.NewVersionIsInvalidError("metadata.schemaVersion", err)
	}
	constraint, err := semver.NewConstraint(SupportedSchemas)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return errs.NewVersionIsInvalidError(
			"metadata.schemaVersion",
			fmt.Errorf("%s is not compatible with %s", version, supported),
		)
	}
	return nil
}

func decodeProblem(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	return err.Error()
}

func literals[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func names[T fmt.Stringer](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
