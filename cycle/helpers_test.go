package cycle_test

import (
	"fmt"
	"math/rand"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// person builds one input row with up to three desires.
func person(name, loc string, desires ...string) preference.Row {
	row := preference.Row{"Name": name, "CurrentLocation": loc}
	for i, d := range desires {
		row[fmt.Sprintf("Desired%d", i+1)] = d
	}

	return row
}

// repoOf builds a repository from rows.
func repoOf(rows ...preference.Row) *preference.Repository {
	return preference.New(rows)
}

// legs renders a cycle as "Name>Destination#Rank" entries for compact assertions.
func legs(c cycle.Cycle) []string {
	out := make([]string, len(c.Legs))
	for i, l := range c.Legs {
		out[i] = fmt.Sprintf("%s>%s#%d", l.Participant.Name, l.Destination, l.Rank)
	}

	return out
}

// randomRepo builds a deterministic pseudo-random dataset over a few courts.
func randomRepo(seed int64, n int) *preference.Repository {
	courts := []string{"TJSP", "TJRJ", "TJMG", "TJBA", "TJRS", "TJPR"}
	rnd := rand.New(rand.NewSource(seed))
	rows := make([]preference.Row, 0, n)
	for i := 0; i < n; i++ {
		want := make([]string, 1+rnd.Intn(3))
		for j := range want {
			want[j] = courts[rnd.Intn(len(courts))]
		}
		rows = append(rows, person(fmt.Sprintf("P%02d", i), courts[rnd.Intn(len(courts))], want...))
	}

	return preference.New(rows)
}
