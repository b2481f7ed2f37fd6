package order

import (
	"errors"
	"fmt"
	"time"

	"decoflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LeadSource is where a lead came from.
type LeadSource string

const (
	SourceReferral       LeadSource = "Referral"
	SourceWebsite        LeadSource = "Website"
	SourceSocialMedia    LeadSource = "Social Media"
	SourceWalkIn         LeadSource = "Walk-in"
	SourceRepeatCustomer LeadSource = "Repeat Customer"
	SourceColdOutreach   LeadSource = "Cold Outreach"
	SourceOther          LeadSource = "Other"
)

// LeadSources lists every valid LeadSource.
func LeadSources() []LeadSource {
	return []LeadSource{
		SourceReferral, SourceWebsite, SourceSocialMedia, SourceWalkIn,
		SourceRepeatCustomer, SourceColdOutreach, SourceOther,
	}
}

// Validate rejects sources outside LeadSources.
func (s LeadSource) Validate() error {
	for _, known := range LeadSources() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("lead source is invalid", fmt.Errorf("%q is not a valid lead source", string(s)))
}

// LeadTemperature is the sales team's estimate of how likely a lead converts.
type LeadTemperature string

const (
	Hot  LeadTemperature = "Hot"
	Warm LeadTemperature = "Warm"
	Cold LeadTemperature = "Cold"
)

// LeadTemperatures lists every valid LeadTemperature.
func LeadTemperatures() []LeadTemperature {
	return []LeadTemperature{Hot, Warm, Cold}
}

// Validate rejects temperatures outside LeadTemperatures.
func (t LeadTemperature) Validate() error {
	switch t {
	case Hot, Warm, Cold:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("lead temperature is invalid", fmt.Errorf("%q is not a valid lead temperature", string(t)))
}

// LeadInfo is the qualification data of an order that started as a Lead.
// It is kept after conversion for funnel reporting.
type LeadInfo struct {
	Source         LeadSource      `json:"source"`
	Temperature    LeadTemperature `json:"temperature"`
	EstimatedValue decimal.Decimal `json:"estimatedValue"`
	EventDate      *time.Time      `json:"eventDate,omitempty"`
	FollowUpDate   *time.Time      `json:"followUpDate,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	ConvertedAt    *time.Time      `json:"convertedAt,omitempty"`
}

// withDefaults fills an empty source and temperature.
func (l LeadInfo) withDefaults() LeadInfo {
	if l.Source == "" {
		l.Source = SourceOther
	}
	if l.Temperature == "" {
		l.Temperature = Warm
	}
	return l
}

// Validate checks enum membership and that the estimated value is not negative.
func (l LeadInfo) Validate() error {
	var valueErr error
	if l.EstimatedValue.IsNegative() {
		valueErr = errs.NewValueIsInvalidErrorWithCause(
			"estimated value is invalid",
			fmt.Errorf("%s is negative", l.EstimatedValue),
		)
	}
	return errors.Join(l.Source.Validate(), l.Temperature.Validate(), valueErr)
}

func (l LeadInfo) clone() LeadInfo {
	l.EventDate = cloneTime(l.EventDate)
	l.FollowUpDate = cloneTime(l.FollowUpDate)
	l.ConvertedAt = cloneTime(l.ConvertedAt)
	return l
}
