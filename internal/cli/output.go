package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dyslexicore/dyslexicore-cli/internal/dashboard"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.User:
		o.printUser(v)
	case model.RoundResult:
		o.printRoundResult(v)
	case []model.SupportResource:
		o.printResourceList(v)
	case model.SupportResource:
		o.printResource(v)
	case dashboard.View:
		o.printDashboard(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u model.User) {
	fmt.Printf("Name: %s\n", u.DisplayName())
	fmt.Printf("Email: %s\n", u.Email)
	if u.Age > 0 {
		fmt.Printf("Age: %d\n", u.Age)
	}
}

func (o *Output) printRoundResult(r model.RoundResult) {
	fmt.Printf("\n%s finished!\n", r.TestType)
	fmt.Printf("Time: %ds\n", r.TotalTimeSec)
	fmt.Printf("Accuracy: %.1f%% (%s risk)\n", r.AccuracyPercent, model.RiskLevelFor(r.AccuracyPercent))
}

func (o *Output) printResourceList(resources []model.SupportResource) {
	fmt.Printf("Parent Support Directory (%d resources):\n", len(resources))
	for _, r := range resources {
		fmt.Printf("  %-20s %s\n", r.Slug, r.Title)
	}
	fmt.Println("\nUse 'dxcore support show <slug>' to read one.")
}

func (o *Output) printResource(r model.SupportResource) {
	fmt.Println(r.Title)
	fmt.Println()
	fmt.Println(r.Body)
	fmt.Printf("\nMore: %s\n", r.ExternalLink)
}

func (o *Output) printDashboard(v dashboard.View) {
	if v.Intervention != nil {
		fmt.Printf("Current module: %s (%s)\n", v.Intervention.CurrentModule, v.Intervention.Status)
	} else {
		fmt.Println("Current module: unavailable")
	}

	if v.History == nil {
		fmt.Println("Assessment history: unavailable")
		return
	}
	if len(v.History) == 0 {
		fmt.Println("No assessments yet. Try 'dxcore play assessment'!")
		return
	}

	fmt.Printf("\nAssessment history (%d):\n", len(v.History))
	for _, rec := range v.History {
		fmt.Printf("  %s  %-22s %6.1f%%  %s\n",
			rec.CreatedAt.Format("2006-01-02"), rec.TestType, rec.AccuracyPercent, rec.RiskLevel)
	}
}
