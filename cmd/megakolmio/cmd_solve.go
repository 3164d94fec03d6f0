package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"svw.info/megakolmio/internal/catalog"
	"svw.info/megakolmio/internal/domain"
	"svw.info/megakolmio/internal/infrastructure/storage"
	"svw.info/megakolmio/internal/report"
	"svw.info/megakolmio/internal/solver"
	"svw.info/megakolmio/internal/usecase"
	"svw.info/megakolmio/internal/validator"
)

func (o *options) runPrint(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}
	out := report.NewWriter(o.stdout, format)
	s := solver.NewBacktrackingSolver(catalog.Standard())
	st, err := s.Enumerate(cmd.Context(), out.Write)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return errors.Wrap(err, "search")
	}
	o.logger.Debug("search finished",
		"format", format,
		"solutions", st.Solutions,
		"nodes", humanize.Comma(st.Nodes),
		"pruned", humanize.Comma(st.Pruned),
		"dur", st.Duration,
	)
	return nil
}

func (o *options) runCount(cmd *cobra.Command, args []string) error {
	n, st, err := solver.NewBacktrackingSolver(catalog.Standard()).Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(o.stdout, n)
	o.logger.Info("search finished", "nodes", humanize.Comma(st.Nodes), "dur", st.Duration)
	return nil
}

func (o *options) runCheck(cmd *cobra.Command, args []string) error {
	ps, err := parsePlacements(args[0])
	if err != nil {
		return err
	}
	ok, conflicts, err := validator.New(catalog.Standard()).Validate(cmd.Context(), ps)
	if err != nil {
		return err
	}
	for _, c := range conflicts {
		if c.EdgeA != "" {
			fmt.Fprintf(o.stdout, "%d-%d: %s (%s vs %s)\n", c.A, c.B, c.Reason, c.EdgeA, c.EdgeB)
		} else {
			fmt.Fprintf(o.stdout, "%d-%d: %s\n", c.A, c.B, c.Reason)
		}
	}
	switch {
	case ok:
		fmt.Fprintln(o.stdout, "ok")
	case len(conflicts) == 0:
		fmt.Fprintf(o.stdout, "consistent so far, %d of %d positions filled\n", len(ps), domain.NumPositions)
	default:
		return errors.Errorf("%d conflict(s)", len(conflicts))
	}
	return nil
}

// parsePlacements reads "P1:0,P2:1,..." in position order. A missing rotation means 0.
func parsePlacements(arg string) ([]domain.PlacedCard, error) {
	var out []domain.PlacedCard
	for _, field := range strings.Split(arg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, rot, hasRot := strings.Cut(field, ":")
		pc := domain.PlacedCard{Card: name}
		if hasRot {
			r, err := strconv.Atoi(rot)
			if err != nil || r < 0 || r > domain.MaxRotation {
				return nil, errors.Errorf("bad rotation in %q", field)
			}
			pc.Rotation = domain.Rotation(r)
		}
		out = append(out, pc)
	}
	return out, nil
}

func (o *options) service() *usecase.Service {
	cat := catalog.Standard()
	return usecase.NewService(
		solver.NewBacktrackingSolver(cat),
		validator.New(cat),
		nil,
		storage.NewFS(o.persistPath),
	)
}

func (o *options) runList(cmd *cobra.Command, args []string) error {
	runs, err := o.service().List(cmd.Context())
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(o.stdout, "%s\t%s\t%d solution(s)\t%s\n",
			r.ID, r.Name, r.Solutions, humanize.Time(time.Unix(0, r.CreatedAt)))
	}
	return nil
}

func (o *options) runSave(cmd *cobra.Command, args []string) error {
	run, err := o.service().Record(cmd.Context(), o.runName)
	if err != nil {
		return err
	}
	fmt.Fprintln(o.stdout, run.ID)
	o.logger.Info("run saved", "id", run.ID, "solutions", len(run.Solutions), "dir", o.persistPath)
	return nil
}
