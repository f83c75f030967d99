package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/person-form/internal/personform"
	"github.com/aanand-mishra/person-form/internal/types"
)

var errBlocked = errors.New("submission blocked")

func newCheckCmd() *cobra.Command {
	var p types.Person

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one submission attempt and print the result per field",
		Long: `Runs the person form's submission check on the given values, without a
server. Prints each required field with its validity and exits non-zero
when the submission would be blocked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := personform.Attempt(p.Values())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, f := range res.Fields {
				state := "valid"
				if !f.Valid {
					state = "invalid"
				}
				fmt.Fprintf(tw, "%s\t%s\n", f.Name, state)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if !res.Valid {
				fmt.Fprintln(out, res.Banner)
				return errBlocked
			}
			fmt.Fprintln(out, "submission allowed")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&p.FirstName, types.FieldFirstName, "", "first name")
	flags.StringVar(&p.LastName, types.FieldLastName, "", "last name")
	flags.StringVar(&p.Standing, types.FieldStanding, "", "class standing code (f, so, jr, sr, ss)")
	flags.StringVar(&p.Age, types.FieldAge, "", "age")
	flags.StringVar(&p.Email, types.FieldEmail, "", "email address")
	return cmd
}
