package cmd

import (
	"flag"

	"github.com/etnz/riskstat/date"
	"github.com/etnz/riskstat/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the rstat commands,
// built from their flag sets.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{"v": predict.Nothing},
	}
	for _, c := range Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictor(f) })
		root.Sub[c.Name()] = sub
	}
	topics, _ := docs.GetAllTopics()
	root.Sub["topic"] = &complete.Command{
		Flags: map[string]complete.Predictor{"raw": predict.Nothing},
		Args:  predict.Set(topics),
	}
	return root
}

// frequencies lists the values accepted by date.ParsePeriod.
func frequencies() predict.Set {
	var names predict.Set
	for _, p := range date.Periods() {
		names = append(names, p.String())
	}
	return names
}

func predictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "i", "o":
		return predict.Files("*.csv")
	case "config":
		return predict.Files("*.yaml")
	case "charts":
		return predict.Dirs("*")
	case "frequency":
		return frequencies()
	default:
		return predict.Something
	}
}
