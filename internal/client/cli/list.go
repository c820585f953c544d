package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/bowlsignup/internal/models"
)

// renderList prints records as an aligned table, in the order the server
// sent them.
func renderList(w io.Writer, records []models.Bowler, now time.Time) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No sign-ups yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tOPTED IN\tSIGNED UP")
	for _, r := range records {
		signedUp := "-"
		if !r.CreatedAt.IsZero() {
			signedUp = humanize.RelTime(r.CreatedAt, now, "ago", "from now")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Email, r.Phone, yesNo(r.OptedIn), signedUp)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s bowler(s)\n", humanize.Comma(int64(len(records))))
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
