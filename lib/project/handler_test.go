package projecthandler

import (
	"ets-backend/db/dbtest"
	"ets-backend/models"
	projectapimodels "ets-backend/models/api/project"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjects(t *testing.T) {
	handler := NewInstance(dbtest.NewSeeded(t))

	t.Run("seeded roadmap order check", func(t *testing.T) {
		project, err := handler.Get("proj-2")
		require.NoError(t, err)
		require.Len(t, project.Roadmap, 4)
		require.Equal(t, "m1", project.Roadmap[0].ID)
		require.Equal(t, "m4", project.Roadmap[3].ID)
		require.ElementsMatch(t, []string{"dept-7", "dept-5"}, project.DepartmentIDs)
	})
	t.Run("create check", func(t *testing.T) {
		project, err := handler.Create(projectapimodels.ProjectData{
			Name:          "Data Warehouse",
			ManagerID:     "2",
			CompanyID:     "comp-1",
			DepartmentIDs: []string{"dept-2", "dept-2", "dept-7"},
			Deadline:      "2026-01-31",
			Priority:      models.PriorityLow,
			EstimatedTime: 40,
		})
		require.NoError(t, err)
		require.NotEmpty(t, project.ID)
		require.ElementsMatch(t, []string{"dept-2", "dept-7"}, project.DepartmentIDs)
		require.Empty(t, project.Roadmap)

		got, err := handler.Get(project.ID)
		require.NoError(t, err)
		require.Equal(t, "Data Warehouse", got.Name)
	})
	t.Run("list filters check", func(t *testing.T) {
		list, err := handler.List(projectapimodels.ProjectFilter{DepartmentID: "dept-3"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "proj-3", list[0].ID)

		list, err = handler.List(projectapimodels.ProjectFilter{ManagerID: "2", CompanyID: "comp-1"})
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 4)

		list, err = handler.List(projectapimodels.ProjectFilter{ManagerID: "3"})
		require.NoError(t, err)
		require.Empty(t, list)
	})
	t.Run("partial update check", func(t *testing.T) {
		deadline := "2024-12-31"
		departments := []string{"dept-4"}
		project, err := handler.Update("proj-4", projectapimodels.ProjectUpdate{
			Deadline:      &deadline,
			DepartmentIDs: &departments,
		})
		require.NoError(t, err)
		require.Equal(t, deadline, project.Deadline)
		require.Equal(t, departments, project.DepartmentIDs)
		require.Equal(t, "Mobile App V2", project.Name)

		_, err = handler.Update("missing", projectapimodels.ProjectUpdate{Deadline: &deadline})
		require.ErrorIs(t, err, ErrProjectNotFound)
	})
	t.Run("save roadmap check", func(t *testing.T) {
		project, err := handler.SaveRoadmap("proj-2", projectapimodels.RoadmapData{
			Milestones: []projectapimodels.MilestoneData{
				{ID: "m3", Name: "Development", Status: models.MilestoneInProgress},
				{ID: "foreign", Name: "Launch", Status: models.MilestonePending},
			},
		})
		require.NoError(t, err)
		require.Len(t, project.Roadmap, 2)
		require.Equal(t, "m3", project.Roadmap[0].ID)
		require.Equal(t, "Development", project.Roadmap[0].Name)
		require.NotEqual(t, "foreign", project.Roadmap[1].ID)
		require.Equal(t, "Launch", project.Roadmap[1].Name)
	})
}
