package xlsexport

import (
	"bytes"
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	// ExportTaskList writes the tasks of one project. userNames resolves assignee and blocker ids.
	ExportTaskList(projectName string, list []dbmodels.Task, userNames map[string]string) (*bytes.Buffer, error)
	ExportSubmissionList(list []dbmodels.OnboardingSubmission) (*bytes.Buffer, error)
}

type impl struct{}

const defaultSheet = "Sheet1"

var taskHeaders = []string{"Task", "Category", "Assignee", "Status", "Priority", "Due date", "Estimated hours", "Tags", "Blocked by", "Block reason"}

var submissionHeaders = []string{"Submitted", "Full name", "Email", "Phone", "Gender", "Date of birth", "College", "Graduation year", "CGPA", "Languages", "Status", "Steps completed"}

func (i impl) ExportTaskList(projectName string, list []dbmodels.Task, userNames map[string]string) (*bytes.Buffer, error) {
	return i.export(sheetName(projectName, "Tasks"), taskHeaders, len(list), func(f *excelize.File, sheet string, row int) error {
		for _, task := range list {
			row++
			assignee := ""
			if task.AssigneeID != nil {
				assignee = userName(userNames, *task.AssigneeID)
			}
			blockedBy := ""
			if task.HasDependency() {
				blockedBy = userName(userNames, *task.DependencyUserID)
			}
			err := writeRow(f, sheet, row,
				task.Name,
				task.Category,
				assignee,
				string(task.Status),
				string(task.Priority),
				task.DueDate,
				task.EstimatedTime,
				strings.Join(task.Tags.Data(), ", "),
				blockedBy,
				task.DependencyReason,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (i impl) ExportSubmissionList(list []dbmodels.OnboardingSubmission) (*bytes.Buffer, error) {
	return i.export("Onboarding", submissionHeaders, len(list), func(f *excelize.File, sheet string, row int) error {
		for _, sub := range list {
			row++
			completed := 0
			for _, step := range sub.Steps {
				if step.Status == models.StepCompleted {
					completed++
				}
			}
			err := writeRow(f, sheet, row,
				sub.SubmissionDate.Format("2006-01-02 15:04"),
				sub.FullName,
				sub.Email,
				sub.Phone,
				string(sub.Gender),
				sub.DateOfBirth,
				sub.CollegeName,
				sub.GradYear,
				sub.Cgpa,
				strings.Join(sub.LanguagesKnown.Data(), ", "),
				string(sub.Status),
				completed,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (i impl) export(sheet string, headers []string, rowCount int, writeData func(f *excelize.File, sheet string, row int) error) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, errors.Wrap(err, "failed to name xlsx sheet")
	}
	row, err := writeHeader(f, sheet, 0, headers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if rowCount == 0 {
		return f.WriteToBuffer()
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(headers), row+rowCount); err != nil {
		return nil, errors.Wrap(err, "failed to style xlsx data")
	}
	if err = writeData(f, sheet, row); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx data")
	}
	return f.WriteToBuffer()
}

func userName(userNames map[string]string, id string) string {
	if name, ok := userNames[id]; ok {
		return name
	}
	return id
}

// sheetName trims a title to the 31 characters excel allows and drops forbidden characters.
func sheetName(title, fallback string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`\/?*[]:`, r) {
			return -1
		}
		return r
	}, title)
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	return name
}

func NewInstance() Provider {
	return impl{}
}
