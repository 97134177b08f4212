// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/bitpeople-node/account"
	"github.com/danielhkuo/bitpeople-node/client"
	"github.com/danielhkuo/bitpeople-node/models"
	"github.com/danielhkuo/bitpeople-node/view"
)

func newStatusCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status [address]",
		Short: "Show the account's phase and next steps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, signedIn, err := o.subject(args)
			if err != nil {
				return err
			}
			resp, err := o.client().Fetch(cmd.Context(), address)
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), view.NewRenderer(), resp, address, signedIn)
		},
	}
}

func newWatchCmd(o *options) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch [address]",
		Short: "Refresh the status until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, signedIn, err := o.subject(args)
			if err != nil {
				return err
			}
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}

			out := cmd.OutOrStdout()
			renderer := view.NewRenderer()
			var last string

			w := client.NewWatcher(o.client(), address)
			w.OnUpdate = func(resp *models.AccountResponse) {
				var b strings.Builder
				if err := printStatus(&b, renderer, resp, address, signedIn); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return
				}
				// Relative times change every tick; only reprint when the data does
				key, _ := json.Marshal(resp)
				if string(key) == last {
					return
				}
				last = string(key)
				fmt.Fprintf(out, "--- %s\n%s", time.Now().Format(time.TimeOnly), b.String())
			}
			w.OnError = func(err error) {
				fmt.Fprintln(cmd.ErrOrStderr(), "fetch failed:", err)
			}
			w.Run(cmd.Context(), interval)
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "Time between refreshes")
	return cmd
}

func printStatus(w io.Writer, r *view.Renderer, resp *models.AccountResponse, address string, signedIn bool) error {
	addr, err := account.ParseAddress(address)
	if err != nil {
		return err
	}
	page, err := r.Render(resp, view.Viewer{Address: addr, SignedIn: signedIn})
	if err != nil {
		return err
	}
	printPage(w, resp, page)
	return nil
}

func printPage(w io.Writer, resp *models.AccountResponse, page *view.Page) {
	sched := resp.Schedule.CurrentSchedule
	fmt.Fprintf(w, "Account %s, period %d, quarter %d\n", page.Address.Hex(), sched.Schedule, sched.Quarter+1)

	for _, s := range page.Sections {
		fmt.Fprintln(w)
		if s.Heading != "" {
			fmt.Fprintln(w, s.Heading)
		}
		for _, p := range s.Paragraphs {
			fmt.Fprintln(w, "  "+p)
		}
		for _, l := range s.Links {
			fmt.Fprintln(w, "  "+l.URL)
		}
		for _, a := range s.Actions {
			fmt.Fprintf(w, "  > %s: bitpeople %s%s\n", a.Label, a.Kind, usage(a))
		}
	}
}

// usage lists an action's arguments, filling in preset values.
func usage(a view.Action) string {
	var b strings.Builder
	for _, in := range a.Inputs {
		b.WriteByte(' ')
		if in.Value != "" {
			b.WriteString(in.Value)
			continue
		}
		b.WriteString("<" + in.Name + ">")
	}
	return b.String()
}
