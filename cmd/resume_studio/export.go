package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	exportInput    string
	exportOutput   string
	exportTemplate string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a résumé JSON file to PDF",
	Long:  `Render a résumé document and print it to an A4 PDF with a headless browser. Set CHROME_PATH to point at a specific browser binary.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "Path to a résumé JSON file (default: seed record)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "resume.pdf", "Path to write the PDF")
	exportCmd.Flags().StringVar(&exportTemplate, "template", string(types.TemplateClassic), "Template variant id")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	data, err := loadResume(exportInput)
	if err != nil {
		return err
	}

	id := types.TemplateID(exportTemplate)
	if !types.KnownTemplate(id) {
		return fmt.Errorf("unknown template %q", exportTemplate)
	}

	html, err := render.Render(data, id)
	if err != nil {
		return err
	}

	pdf, err := export.NewPDFExporter().ExportPDF(cmd.Context(), html)
	if err != nil {
		return err
	}

	if err := os.WriteFile(exportOutput, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Printf("Exported %s (%s) to %s\n", data.PersonalInfo.Name, id, exportOutput)
	return nil
}
