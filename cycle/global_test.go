package cycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// swapRepo: A and B want each other's court, C wants X one-way.
func swapRepo() *preference.Repository {
	return repoOf(
		person("A", "X", "Y"),
		person("B", "Y", "X"),
		person("C", "Z", "X"),
	)
}

// triangleRepo: A→Y, B→Z, C→X.
func triangleRepo() *preference.Repository {
	return repoOf(
		person("A", "X", "Y"),
		person("B", "Y", "Z"),
		person("C", "Z", "X"),
	)
}

// TestFindAll_DirectSwap covers the single mutual pair and the absent triangle.
func TestFindAll_DirectSwap(t *testing.T) {
	repo := swapRepo()

	pairs, err := cycle.FindAll(repo, 2)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, []string{"A>Y#1", "B>X#1"}, legs(pairs[0]))

	triangles, err := cycle.FindAll(repo, 3)
	require.NoError(t, err)
	assert.Empty(t, triangles, "C's desire is one-directional")
}

// TestFindAll_Triangle verifies a 3-cycle is emitted once, starting at the lowest index.
func TestFindAll_Triangle(t *testing.T) {
	cycles, err := cycle.FindAll(triangleRepo(), 3)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"A>Y#1", "B>Z#1", "C>X#1"}, legs(cycles[0]))
	assert.Equal(t, "0,1,2", cycles[0].Key())

	pairs, err := cycle.FindAll(triangleRepo(), 2)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

// TestFindAll_CanonicalRotation checks the emitted rotation starts at row 0
// even when the "natural" reading starts elsewhere.
func TestFindAll_CanonicalRotation(t *testing.T) {
	repo := repoOf(
		person("B", "Y", "Z"),
		person("C", "Z", "X"),
		person("A", "X", "Y"),
	)
	cycles, err := cycle.FindAll(repo, 3)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"B>Z#1", "C>X#1", "A>Y#1"}, legs(cycles[0]))
}

// TestFindAll_FourCycle covers k=4 and that shorter lengths find nothing.
func TestFindAll_FourCycle(t *testing.T) {
	repo := repoOf(
		person("A", "TJSP", "TJRJ"),
		person("B", "TJRJ", "TJMG"),
		person("C", "TJMG", "TJBA"),
		person("D", "TJBA", "TJSP"),
	)
	for _, k := range []int{2, 3} {
		got, err := cycle.FindAll(repo, k)
		require.NoError(t, err)
		assert.Empty(t, got, "k=%d", k)
	}

	got, err := cycle.FindAll(repo, 4)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t,
		[]string{"A>TJRJ#1", "B>TJMG#1", "C>TJBA#1", "D>TJSP#1"},
		legs(got[0]),
	)
}

// TestFindAll_NormalizedMatching verifies accents, case and blanks are irrelevant,
// and that the best rank naming a destination is reported.
func TestFindAll_NormalizedMatching(t *testing.T) {
	repo := repoOf(
		person("Ana", " São Paulo ", "Goiás", "BRASÍLIA"),
		person("Bia", "brasilia", "", "sao paulo"),
	)
	got, err := cycle.FindAll(repo, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Ana>brasilia#2", "Bia>São Paulo#2"}, legs(got[0]))
}

// TestFindAll_SameLocationParticipants treats distinct records at one court as distinct people.
func TestFindAll_SameLocationParticipants(t *testing.T) {
	repo := repoOf(
		person("A1", "X", "Y"),
		person("A2", "X", "Y"),
		person("B", "Y", "X"),
	)
	got, err := cycle.FindAll(repo, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"A1>Y#1", "B>X#1"}, legs(got[0]))
	assert.Equal(t, []string{"A2>Y#1", "B>X#1"}, legs(got[1]))
}

// TestFindAll_InvalidLength rejects lengths outside [2,4].
func TestFindAll_InvalidLength(t *testing.T) {
	for _, k := range []int{-1, 0, 1, 5} {
		got, err := cycle.FindAll(swapRepo(), k)
		assert.ErrorIs(t, err, cycle.ErrInvalidLength, "k=%d", k)
		assert.Nil(t, got)
	}

	_, err := cycle.FindAll(swapRepo(), 5)
	assert.EqualError(t, err, "cycle: length must be 2, 3 or 4: k=5")
}

// TestFindAll_EmptyInputs returns no cycles and no error for empty data.
func TestFindAll_EmptyInputs(t *testing.T) {
	got, err := cycle.FindAll(nil, 2)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = cycle.FindAll(repoOf(), 3)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestFindAll_Budget aborts once more candidates than allowed were examined.
func TestFindAll_Budget(t *testing.T) {
	_, err := cycle.FindAll(triangleRepo(), 3, cycle.WithMaxCandidates(1))
	assert.ErrorIs(t, err, cycle.ErrBudgetExceeded)
	assert.EqualError(t, err, "cycle: candidate budget exceeded: more than 1 candidates")

	got, err := cycle.FindAll(triangleRepo(), 3, cycle.WithMaxCandidates(100))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// TestFindAll_DeadEndsPruned never walks into a chain that cannot close.
func TestFindAll_DeadEndsPruned(t *testing.T) {
	repo := repoOf(
		person("A", "W", "X"),
		person("B", "X", "Y"),
		person("C", "Y", "Z"),
		person("D", "Z", "V"),
	)
	for k := cycle.MinLength; k <= cycle.MaxLength; k++ {
		got, err := cycle.FindAll(repo, k, cycle.WithMaxCandidates(1))
		require.NoError(t, err, "k=%d", k)
		assert.Nil(t, got)
	}
}

// TestFindAll_Cancelled honors an already-cancelled context.
func TestFindAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cycle.FindAll(triangleRepo(), 3, cycle.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualError(t, err, "cycle: FindAll: context canceled")
}

// TestFindAll_OnCycle streams every cycle and propagates hook errors.
func TestFindAll_OnCycle(t *testing.T) {
	var streamed []string
	got, err := cycle.FindAll(randomRepo(3, 20), 2, cycle.WithOnCycle(func(c cycle.Cycle) error {
		streamed = append(streamed, c.Key())
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, streamed, len(got))
	for i, c := range got {
		assert.Equal(t, c.Key(), streamed[i])
	}

	stop := errors.New("stop")
	_, err = cycle.FindAll(swapRepo(), 2, cycle.WithOnCycle(func(cycle.Cycle) error { return stop }))
	assert.ErrorIs(t, err, stop)
}
