package retrieval

import (
	"math"
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
			input: "Blood Pressure Reading",
			want:  []string{"blood", "pressure", "reading"},
		},
		{
			name:  "drops stop words",
			input: "what is the best diet",
			want:  []string{"best", "diet"},
		},
		{
			name:  "drops single characters",
			input: "vitamin c b d intake",
			want:  []string{"vitamin", "intake"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNgrams(t *testing.T) {
	got := ngrams("healthy blood pressure")
	want := []string{"healthy", "blood", "pressure", "healthy blood", "blood pressure"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ngrams() = %v, want %v", got, want)
	}
}

func TestVectorizer_TransformNormalized(t *testing.T) {
	v := newVectorizer(0)
	v.fit([]string{
		"healthy blood pressure",
		"daily water intake",
		"protein rich diet",
	})

	vec := v.transform("healthy blood pressure")

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if math.Abs(norm-1.0) > 1e-9 {
		t.Errorf("transform() squared norm = %v, want 1.0", norm)
	}
}

func TestVectorizer_UnknownTermsScoreZero(t *testing.T) {
	v := newVectorizer(0)
	v.fit([]string{"healthy blood pressure"})

	query := v.transform("quantum entanglement")
	doc := v.transform("healthy blood pressure")

	if got := dot(query, doc); got != 0 {
		t.Errorf("dot() = %v for fully out-of-vocabulary query, want 0", got)
	}
}

func TestVectorizer_MaxFeaturesCapsVocabulary(t *testing.T) {
	v := newVectorizer(3)
	v.fit([]string{
		"alpha beta gamma",
		"alpha beta delta",
		"alpha epsilon zeta",
	})

	if len(v.vocab) != 3 {
		t.Errorf("vocabulary size = %d, want capped at 3", len(v.vocab))
	}
	// The most document-frequent unigram always survives the cap.
	if _, ok := v.vocab["alpha"]; !ok {
		t.Error("vocabulary missing the most frequent term")
	}
}
