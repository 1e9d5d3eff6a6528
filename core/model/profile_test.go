package model

import (
	"errors"
	"testing"
)

func TestProfileDegrade(t *testing.T) {
	p, err := NewConsumptionProfile(4, 1, []float64{0.5})
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	p.Degrade()
	if p.MeanDailyKWh != 2 {
		t.Fatalf("mean after degrade = %v, want 2", p.MeanDailyKWh)
	}
	p.Degrade()
	if p.MeanDailyKWh != 2 {
		t.Fatalf("degrade past schedule changed mean: %v", p.MeanDailyKWh)
	}
}

func TestProfileNegativeMean(t *testing.T) {
	// Negative mean means the household is a net consumer; degradation
	// shrinks the magnitude by the same percentage rule.
	p, err := NewConsumptionProfile(-10, 0, []float64{0.1})
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	p.Degrade()
	if p.MeanDailyKWh != -9 {
		t.Fatalf("mean after degrade = %v, want -9", p.MeanDailyKWh)
	}
}

func TestProfileScheduleValidation(t *testing.T) {
	_, err := NewConsumptionProfile(5, 1, []float64{1.0})
	if err == nil {
		t.Fatalf("expected error for schedule element 1.0")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("reason = %v, want out of range", verr.Reason)
	}
}

func TestProfileStdDevNotValidated(t *testing.T) {
	// The standard deviation carries no range check; a negative value is
	// accepted at construction and only matters at draw time.
	if _, err := NewConsumptionProfile(5, -1, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProfileCloneIndependent(t *testing.T) {
	p, err := NewConsumptionProfile(8, 2, []float64{0.25})
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}
	c := p.Clone()
	c.Degrade()
	if p.MeanDailyKWh != 8 {
		t.Fatalf("clone degrade mutated original: %v", p.MeanDailyKWh)
	}
	if c.MeanDailyKWh != 6 {
		t.Fatalf("clone mean = %v, want 6", c.MeanDailyKWh)
	}
}
