package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/skillr/pkg/skillr"
)

// ratingArg parses a rating given as LOCATION/SCALE. When unset the model
// prior is used.
type ratingArg struct {
	rating skillr.Rating
	set    bool
}

func (a *ratingArg) UnmarshalText(text []byte) error {
	loc, scale, ok := strings.Cut(string(text), "/")
	if !ok {
		return fmt.Errorf("rating %q: want LOCATION/SCALE", text)
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(loc), 64)
	if err != nil {
		return fmt.Errorf("rating %q: location: %w", text, err)
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(scale), 64)
	if err != nil {
		return fmt.Errorf("rating %q: scale: %w", text, err)
	}
	a.rating = skillr.NewRating(l, s)
	a.set = true
	return nil
}

func (a ratingArg) or(prior skillr.Rating) skillr.Rating {
	if a.set {
		return a.rating
	}
	return prior
}

// pairFlags are shared by every command that takes two competitors.
type pairFlags struct {
	P1 ratingArg `name:"p1" help:"Competitor 1 as LOCATION/SCALE (default: model prior)." placeholder:"LOC/SCALE"`
	P2 ratingArg `name:"p2" help:"Competitor 2 as LOCATION/SCALE (default: model prior)." placeholder:"LOC/SCALE"`
}

func (p pairFlags) ratings(model skillr.Config) (skillr.Rating, skillr.Rating) {
	prior := model.Rating()
	return p.P1.or(prior), p.P2.or(prior)
}

type rateCmd struct {
	pairFlags
	Outcome skillr.Outcome `arg:"" help:"Result for competitor 1: win, draw or loss (w, d, l). Put -- before a numeric -1."`
}

func (c *rateCmd) Run(rc *runContext) error {
	r1, r2 := c.ratings(rc.svc.Model())
	m, err := rc.svc.Rate(rc.ctx, r1, r2, c.Outcome)
	if err != nil {
		return err
	}
	renderMatch(rc.out, m)
	return nil
}

type probsCmd struct {
	pairFlags
}

func (c *probsCmd) Run(rc *runContext) error {
	r1, r2 := c.ratings(rc.svc.Model())
	ps, err := rc.svc.Probs(rc.ctx, r1, r2)
	if err != nil {
		return err
	}
	renderProbs(rc.out, r1, r2, ps)
	return nil
}

type replayCmd struct {
	pairFlags
	Outcomes []skillr.Outcome `arg:"" help:"Results for competitor 1 in match order: win, draw or loss (w, d, l). Put -- before a numeric -1."`
}

func (c *replayCmd) Run(rc *runContext) error {
	r1, r2 := c.ratings(rc.svc.Model())
	matches, err := rc.svc.Replay(rc.ctx, r1, r2, c.Outcomes)
	renderReplay(rc.out, matches)
	return err
}
