package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	renderInput    string
	renderOutput   string
	renderTemplate string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a résumé JSON file to HTML",
	Long:  `Validate a résumé JSON document and render it through one of the layout variants. Without --input the built-in seed record is rendered.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "Path to a résumé JSON file (default: seed record)")
	renderCmd.Flags().StringVar(&renderOutput, "output", "resume.html", "Path to write the HTML document")
	renderCmd.Flags().StringVar(&renderTemplate, "template", string(types.TemplateClassic), "Template variant id")
	rootCmd.AddCommand(renderCmd)
}

// loadResume reads and validates a résumé document, or returns the seed
// record when no path is given.
func loadResume(path string) (types.ResumeData, error) {
	if path == "" {
		return types.SeedData(), nil
	}

	doc, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := schemas.ValidateResumeJSON(doc); err != nil {
		return types.ResumeData{}, err
	}

	var data types.ResumeData
	if err := json.Unmarshal(doc, &data); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return data, nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	data, err := loadResume(renderInput)
	if err != nil {
		return err
	}

	id := types.TemplateID(renderTemplate)
	if !types.KnownTemplate(id) {
		return fmt.Errorf("unknown template %q", renderTemplate)
	}

	html, err := render.Render(data, id)
	if err != nil {
		return err
	}

	if err := os.WriteFile(renderOutput, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}
	fmt.Printf("Rendered %s (%s) to %s\n", data.PersonalInfo.Name, id, renderOutput)
	return nil
}
