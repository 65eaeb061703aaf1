package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scribekit/scribe/internal/domain"
)

func TestSanitizeArray_StripsCodeFences(t *testing.T) {
	raw := "```json\n[\"A\",\"B\"]\n```"
	require.Equal(t, `["A","B"]`, domain.SanitizeArray(raw))
}

func TestSanitizeArray_ExtractsArrayFromProse(t *testing.T) {
	raw := `Sure! Here are your titles: ["One", "Two"] Hope that helps.`
	require.Equal(t, `["One", "Two"]`, domain.SanitizeArray(raw))
}

func TestSanitizeArray_IdempotentOnCleanInput(t *testing.T) {
	clean := `["A","B","C"]`
	require.Equal(t, clean, domain.SanitizeArray(clean))
	require.Equal(t, clean, domain.SanitizeArray(domain.SanitizeArray(clean)))
}

func TestSanitizeArray_NoBracketsReturnsEmptyArray(t *testing.T) {
	require.Equal(t, "[]", domain.SanitizeArray("I could not produce a list, sorry."))
	require.Equal(t, "[]", domain.SanitizeArray(""))
}

func TestSanitizeArray_ReversedBracketsReturnsEmptyArray(t *testing.T) {
	require.Equal(t, "[]", domain.SanitizeArray("] backwards ["))
}

func TestSanitizeArray_KeepsOutermostBracketPair(t *testing.T) {
	raw := `noise [["nested"], "flat"] trailing`
	require.Equal(t, `[["nested"], "flat"]`, domain.SanitizeArray(raw))
}
