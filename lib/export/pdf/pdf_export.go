package pdfexport

import (
	"bytes"
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	fontFamily = "Helvetica"
	labelWidth = 55
	lineHeight = 7
	photoWidth = 35
)

// GenerateSubmissionSummary renders one onboarding submission. photo is optional.
func GenerateSubmissionSummary(sub dbmodels.OnboardingSubmission, photo *models.File) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSubmissionSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Onboarding summary - "+sub.FullName), false)
	pdf.AddPage()

	err = putImg(pdf, photo)
	if err != nil {
		return nil, err
	}
	if photo != nil {
		pageX, _, _ := pdf.PageSize(1)
		pdf.Image(photo.FileName, pageX-10-photoWidth, 10, photoWidth, 0, false, "", 0, "")
	}

	pdf.SetFont(fontFamily, "B", 16)
	pdf.Cell(0, 10, tr(sub.FullName))
	pdf.Ln(10)
	pdf.SetFont(fontFamily, "", 11)
	pdf.Cell(0, lineHeight, tr(fmt.Sprintf("Submitted %s, status: %s", sub.SubmissionDate.Format("2006-01-02"), sub.Status)))
	pdf.Ln(lineHeight * 2)

	section(pdf, tr, "Personal details", [][2]string{
		{"Email", sub.Email},
		{"Guardian", sub.GuardianName},
		{"Date of birth", sub.DateOfBirth},
		{"Gender", string(sub.Gender)},
		{"Phone", sub.Phone},
		{"Alternative phone", sub.AltPhone},
		{"Address", sub.Address},
		{"Government ID", sub.GovtID},
		{"Languages", strings.Join(sub.LanguagesKnown.Data(), ", ")},
	})
	section(pdf, tr, "Education", [][2]string{
		{"College", sub.CollegeName},
		{"Graduation year", yearString(sub.GradYear)},
		{"CGPA", sub.Cgpa},
	})
	section(pdf, tr, "Availability", [][2]string{
		{"Preferred work time", sub.WorkTime},
		{"Preferred meeting time", sub.MeetingTime},
	})
	if len(sub.Steps) > 0 {
		rows := make([][2]string, 0, len(sub.Steps))
		for _, step := range sub.Steps {
			state := string(step.Status)
			if step.CompletedAt != nil {
				state = fmt.Sprintf("%s on %s", state, step.CompletedAt.Format("2006-01-02 15:04"))
			}
			rows = append(rows, [2]string{step.Name, state})
		}
		section(pdf, tr, "Onboarding checklist", rows)
	}
	pdf.Ln(lineHeight)
	pdf.SetFont(fontFamily, "I", 10)
	pdf.MultiCell(0, lineHeight, tr("Signed: "+sub.Signature), "", "L", false)

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title string, rows [][2]string) {
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, lineHeight+1, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "", 11)
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(labelWidth, lineHeight, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		pdf.MultiCell(0, lineHeight, tr(row[1]), "", "L", false)
	}
	pdf.Ln(lineHeight / 2)
}

func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return fmt.Sprint(year)
}

func putImg(pdf *fpdf.Fpdf, fileData *models.File) (err error) {
	if fileData == nil {
		return nil
	}
	options := fpdf.ImageOptions{
		ReadDpi: false,
	}
	options.ImageType, err = GetImgType(fileData.FileName)
	if err != nil {
		return err
	}
	reader := bytes.NewReader(fileData.Body)
	pdf.RegisterImageOptionsReader(fileData.FileName, options, reader)
	return pdf.Error()
}

func GetImgType(fileName string) (string, error) {
	pos := strings.LastIndex(fileName, ".")
	if pos < 0 {
		return "", errors.Errorf("failed to get file extension: %s", fileName)
	}
	return strings.ToLower(fileName[pos+1:]), nil
}
