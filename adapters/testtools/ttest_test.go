package testtools

import (
	"context"
	"math"
	"testing"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/ports"
)

func sampleOf(name string, values ...float64) table.Sample {
	return table.Sample{Name: name, Values: values}
}

func TestTTest_SeparatedSamples(t *testing.T) {
	tool := NewTTest(Student, 0.05)
	x := sampleOf("a", 1.1, 0.9, 1.0, 1.2, 0.8, 1.0, 1.1, 0.9)
	y := sampleOf("b", 5.0, 5.2, 4.8, 5.1, 4.9, 5.0, 5.1, 4.9)

	res, err := tool.Run(context.Background(), x, y, ports.TwoSided)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PValue < 0 || res.PValue > 1 {
		t.Errorf("p-value outside [0,1]: %f", res.PValue)
	}
	if res.PValue > 0.001 {
		t.Errorf("expected strong significance, got p=%f", res.PValue)
	}
	if res.Statistic >= 0 {
		t.Errorf("expected negative t for mean(a) < mean(b), got %f", res.Statistic)
	}
	if !res.HasDF || res.DF != 14 {
		t.Errorf("expected df=14, got %f", res.DF)
	}
	if !res.HasEffect {
		t.Error("expected an effect size")
	}
}

func TestTTest_IdenticalSamples(t *testing.T) {
	tool := NewTTest(Student, 0.05)
	x := sampleOf("a", 1, 2, 3, 4, 5)
	y := sampleOf("b", 1, 2, 3, 4, 5)

	res, err := tool.Run(context.Background(), x, y, ports.TwoSided)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Statistic != 0 {
		t.Errorf("expected t=0 for identical samples, got %f", res.Statistic)
	}
	if res.PValue < 0.99 {
		t.Errorf("expected p near 1, got %f", res.PValue)
	}
}

func TestTTest_Alternatives(t *testing.T) {
	x := sampleOf("a", 1.0, 1.5, 0.5, 1.2, 0.8)
	y := sampleOf("b", 2.0, 2.5, 1.5, 2.2, 1.8)
	ctx := context.Background()
	tool := NewTTest(Student, 0.05)

	less, err := tool.Run(ctx, x, y, ports.Less)
	if err != nil {
		t.Fatalf("less: %v", err)
	}
	greater, err := tool.Run(ctx, x, y, ports.Greater)
	if err != nil {
		t.Fatalf("greater: %v", err)
	}
	if math.Abs(less.PValue+greater.PValue-1) > 1e-9 {
		t.Errorf("one-sided p-values should sum to 1, got %f + %f", less.PValue, greater.PValue)
	}
	if less.PValue >= greater.PValue {
		t.Errorf("mean(a) < mean(b) should favor the less alternative: %f vs %f", less.PValue, greater.PValue)
	}

	if _, err := tool.Run(ctx, x, y, ports.Alternative("sideways")); !core.IsInvalidInput(err) {
		t.Errorf("expected InvalidInput for bad alternative, got %v", err)
	}
}

func TestTTest_ZeroVariance(t *testing.T) {
	tool := NewTTest(Auto, 0.05)
	x := sampleOf("a", 2, 2, 2, 2)
	y := sampleOf("b", 2, 2, 2, 2)
	if _, err := tool.Run(context.Background(), x, y, ports.TwoSided); !core.IsComputationError(err) {
		t.Errorf("expected ComputationError for zero variance, got %v", err)
	}
}

func TestTTest_AutoKindResolution(t *testing.T) {
	tool := NewTTest(Auto, 0.05)
	// Similar variances: the gate should keep Student's pooled test.
	x := sampleOf("a", 1.0, 1.1, 0.9, 1.05, 0.95, 1.0)
	y := sampleOf("b", 2.0, 2.1, 1.9, 2.05, 1.95, 2.0)
	res, err := tool.Run(context.Background(), x, y, ports.TwoSided)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Details["kind"] != string(Student) {
		t.Errorf("expected the gate to resolve student, got %v", res.Details["kind"])
	}
}

func TestTTest_TooSmall(t *testing.T) {
	tool := NewTTest(Student, 0.05)
	x := sampleOf("a", 1)
	y := sampleOf("b", 2, 3)
	if _, err := tool.Run(context.Background(), x, y, ports.TwoSided); !core.IsInvalidInput(err) {
		t.Errorf("expected InvalidInput for a single observation, got %v", err)
	}
}

func TestPairedTTest_LengthMismatch(t *testing.T) {
	tool := NewPairedTTest()
	x := sampleOf("a", 1, 2, 3)
	y := sampleOf("b", 1, 2)
	if _, err := tool.Run(context.Background(), x, y, ports.TwoSided); !core.IsInvalidInput(err) {
		t.Errorf("expected InvalidInput for mismatched lengths, got %v", err)
	}
}

func TestPairedTTest_ConsistentShift(t *testing.T) {
	tool := NewPairedTTest()
	x := sampleOf("before", 10.2, 9.8, 10.5, 10.1, 9.9, 10.3, 10.0, 9.7)
	y := sampleOf("after", 11.1, 10.9, 11.4, 11.2, 10.8, 11.3, 11.0, 10.6)

	res, err := tool.Run(context.Background(), x, y, ports.TwoSided)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PValue > 0.001 {
		t.Errorf("expected a clear shift, got p=%f", res.PValue)
	}
	if res.DF != 7 {
		t.Errorf("expected df=7, got %f", res.DF)
	}
}

func TestPairedTTest_ZeroVarianceDiffs(t *testing.T) {
	tool := NewPairedTTest()
	x := sampleOf("a", 1, 2, 3)
	y := sampleOf("b", 2, 3, 4) // constant difference
	if _, err := tool.Run(context.Background(), x, y, ports.TwoSided); !core.IsComputationError(err) {
		t.Errorf("expected ComputationError for constant differences, got %v", err)
	}
}

func TestTTest_EffectSizeDenominatorPerKind(t *testing.T) {
	// Sample variances are 10 and 0.09 by construction; the sizes differ
	// so pooling and averaging give different denominators.
	x := sampleOf("a", 0, 2, 4, 6, 8)
	y := sampleOf("b", 10, 10.3, 9.7)

	welch, err := NewTTest(Welch, 0.05).Run(context.Background(), x, y, ports.TwoSided)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !welch.HasEffect {
		t.Fatal("expected an effect size")
	}
	wantWelch := (4.0 - 10.0) / math.Sqrt((10.0+0.09)/2)
	if math.Abs(welch.EffectSize-wantWelch) > 1e-9 {
		t.Errorf("welch effect = %f, want %f", welch.EffectSize, wantWelch)
	}

	student, err := NewTTest(Student, 0.05).Run(context.Background(), x, y, ports.TwoSided)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStudent := (4.0 - 10.0) / math.Sqrt((4*10.0+2*0.09)/6)
	if math.Abs(student.EffectSize-wantStudent) > 1e-9 {
		t.Errorf("student effect = %f, want %f", student.EffectSize, wantStudent)
	}
	if welch.EffectSize == student.EffectSize {
		t.Error("the two standardizations must differ on unequal variances")
	}
}
