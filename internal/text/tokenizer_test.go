package text

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and splits",
			input: "Swiggy Food Delivery",
			want:  []string{"swiggy", "food", "delivery"},
		},
		{
			name:  "strips punctuation",
			input: "uber*trip, bangalore!",
			want:  []string{"uber", "trip", "bangalore"},
		},
		{
			name:  "digit runs collapse to num token",
			input: "order 12345 total 678",
			want:  []string{"order", NumToken, "total", NumToken},
		},
		{
			name:  "short tokens dropped",
			input: "go to rs the store",
			want:  []string{"store"},
		},
		{
			name:  "stopwords dropped",
			input: "payment for the groceries via upi",
			want:  []string{"groceries"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only punctuation",
			input: "!!! ---",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Tokenize(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	input := "Zomato order 450 dinner pizza #8812"
	first := Tokenize(input)
	for i := 0; i < 10; i++ {
		if got := Tokenize(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize not deterministic: %v vs %v", got, first)
		}
	}
}

func TestTermFrequency(t *testing.T) {
	tf := TermFrequency([]string{"food", "food", "delivery"})
	if tf["food"] != 2 || tf["delivery"] != 1 {
		t.Errorf("TermFrequency = %v", tf)
	}
}

func TestAmountBucket(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, BucketTiny},
		{50, BucketTiny},
		{99.99, BucketTiny},
		{100, BucketSmall},
		{499.99, BucketSmall},
		{500, BucketMedium},
		{750, BucketMedium},
		{1000, BucketLarge},
		{4999, BucketLarge},
		{5000, BucketHuge},
		{6000, BucketHuge},
	}
	for _, tt := range tests {
		if got := AmountBucket(tt.amount); got != tt.want {
			t.Errorf("AmountBucket(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
