package db

import (
	"ets-backend/models"
	dbmodels "ets-backend/models/db"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "password123"

func InitPreload() {
	if err := Seed(DB, bcrypt.DefaultCost); err != nil {
		log.WithError(err).Error("failed to load seed data")
	}
}

// Seed fills an empty database with the demo company. It does nothing when a company already exists.
func Seed(tx *gorm.DB, bcryptCost int) error {
	var count int64
	if err := tx.Model(&dbmodels.Company{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check seed state")
	}
	if count > 0 {
		return nil
	}
	now := time.Now()
	return tx.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			fn   func(tx *gorm.DB) error
		}{
			{"companies", seedCompanies},
			{"users", func(tx *gorm.DB) error { return seedUsers(tx, bcryptCost) }},
			{"projects", seedProjects},
			{"tasks", func(tx *gorm.DB) error { return seedTasks(tx, now) }},
			{"attendance", func(tx *gorm.DB) error { return seedAttendance(tx, now) }},
			{"onboarding", func(tx *gorm.DB) error { return seedOnboarding(tx, now) }},
			{"chat", func(tx *gorm.DB) error { return seedChat(tx, now) }},
		}
		for _, step := range steps {
			if err := step.fn(tx); err != nil {
				return errors.Wrapf(err, "failed to seed %s", step.name)
			}
		}
		log.Info("seed data loaded")
		return nil
	})
}

func seedCompanies(tx *gorm.DB) error {
	company := dbmodels.Company{
		BaseModel: dbmodels.BaseModel{ID: "comp-1", CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		Name:      "Innovate Inc.",
		OwnerID:   "1",
	}
	if err := tx.Create(&company).Error; err != nil {
		return err
	}
	names := []string{
		"Administration",
		"Finance & Accounting",
		"Human Resources (HR)",
		"Operations",
		"Marketing",
		"Sales",
		"Information Technology (IT)",
		"Customer Service",
	}
	departments := make([]dbmodels.Department, 0, len(names))
	for idx, name := range names {
		departments = append(departments, dbmodels.Department{
			BaseModel: dbmodels.BaseModel{ID: fmt.Sprintf("dept-%d", idx+1)},
			CompanyID: company.ID,
			Name:      name,
		})
	}
	return tx.Create(&departments).Error
}

func seedUser(id, name, email string, role models.UserRole, managerID string, departmentIDs []string,
	jobTitle string, status models.UserStatus, joined string, skills []string, stats dbmodels.UserStats, rating float64) dbmodels.User {
	joinedDate, _ := time.Parse(models.DateLayout, joined)
	return dbmodels.User{
		BaseModel:     dbmodels.BaseModel{ID: id},
		Name:          name,
		Email:         email,
		Role:          role,
		CompanyID:     "comp-1",
		ManagerID:     managerID,
		DepartmentIDs: dbmodels.NewStringList(departmentIDs),
		JobTitle:      jobTitle,
		Status:        status,
		JoinedDate:    joinedDate,
		Skills:        dbmodels.NewStringList(skills),
		Stats:         dbmodels.NewJSONType(stats),
		Rating:        rating,
	}
}

func seedUsers(tx *gorm.DB, bcryptCost int) error {
	users := []dbmodels.User{
		seedUser("1", "Admin User", "admin@test.com", models.AdminRole, "", []string{"dept-1"},
			"Administrator", models.UserActiveStatus, "2022-01-10", []string{"System Admin", "Database Mgmt", "Security"},
			dbmodels.UserStats{CompletedTasks: 5, InProgressTasks: 1, Efficiency: 95, TotalHours: 45, Workload: models.WorkloadLight}, 9.5),
		seedUser("2", "Manager User", "manager@test.com", models.ManagerRole, "", []string{"dept-7", "dept-5"},
			"Project Manager", models.UserActiveStatus, "2022-05-20", []string{"Agile", "Scrum", "JIRA", "Leadership"},
			dbmodels.UserStats{CompletedTasks: 25, InProgressTasks: 5, Efficiency: 91, TotalHours: 350, Workload: models.WorkloadNormal}, 9.1),
		seedUser("3", "Drone TV", "drone@example.com", models.EmployeeRole, "2", []string{"dept-7"},
			"Developer", models.UserActiveStatus, "2024-01-15", []string{"React", "TypeScript", "Node.js", "Python"},
			dbmodels.UserStats{CompletedTasks: 12, InProgressTasks: 3, Efficiency: 92, TotalHours: 156, Workload: models.WorkloadNormal}, 9.2),
		seedUser("4", "Sarah Chen", "sarah.chen@example.com", models.EmployeeRole, "2", []string{"dept-5"},
			"Designer", models.UserActiveStatus, "2024-02-01", []string{"UI/UX", "Figma", "Adobe Creative Suite", "Prototyping"},
			dbmodels.UserStats{CompletedTasks: 8, InProgressTasks: 2, Efficiency: 88, TotalHours: 98, Workload: models.WorkloadLight}, 8.8),
		seedUser("5", "Mike Rodriguez", "mike.rodriguez@example.com", models.EmployeeRole, "2", []string{"dept-7"},
			"Developer", models.UserBusyStatus, "2023-11-10", []string{"Vue.js", "Python", "Docker", "AWS"},
			dbmodels.UserStats{CompletedTasks: 18, InProgressTasks: 4, Efficiency: 85, TotalHours: 234, Workload: models.WorkloadHeavy}, 8.5),
		seedUser("6", "Jessica Brown", "jessica.b@test.com", models.EmployeeRole, "2", []string{"dept-7"},
			"QA Engineer", models.UserOfflineStatus, "2023-03-12", []string{"Jest", "Cypress", "Automation", "CI/CD"},
			dbmodels.UserStats{CompletedTasks: 35, InProgressTasks: 1, Efficiency: 98, TotalHours: 180, Workload: models.WorkloadLight}, 9.8),
		// no manager
		seedUser("7", "David Miller", "david.m@test.com", models.EmployeeRole, "", []string{"dept-7"},
			"DevOps Engineer", models.UserActiveStatus, "2022-08-01", []string{"Kubernetes", "Terraform", "Jenkins", "GCP"},
			dbmodels.UserStats{CompletedTasks: 22, InProgressTasks: 2, Efficiency: 93, TotalHours: 210, Workload: models.WorkloadNormal}, 9.3),
		seedUser("8", "HR User", "hr@test.com", models.HRRole, "", []string{"dept-3"},
			"HR Specialist", models.UserActiveStatus, "2023-01-10", []string{"Recruiting", "Onboarding", "Employee Relations"},
			dbmodels.UserStats{CompletedTasks: 10, InProgressTasks: 2, Efficiency: 96, TotalHours: 40, Workload: models.WorkloadNormal}, 9.6),
	}

	manager := &users[1]
	manager.PersonalDetails = dbmodels.NewJSONType(&dbmodels.PersonalDetails{
		DateOfBirth: "1985-08-15", Nationality: "American", MaritalStatus: "Married", Gender: "Female",
	})
	manager.ContactNumber = "+1 123-456-7890"
	manager.Address = dbmodels.NewJSONType(&dbmodels.Address{
		Street: "456 Oak Avenue", City: "Metropolis", State: "CA", ZipCode: "90210", Country: "USA",
	})
	manager.FamilyMembers = dbmodels.NewJSONType([]dbmodels.FamilyMember{
		{ID: "fm-1", Name: "John Doe", Relationship: "Spouse", DateOfBirth: "1984-07-20"},
	})
	manager.Education = dbmodels.NewJSONType([]dbmodels.Education{
		{ID: "edu-1", Degree: "MBA", Institution: "State University", YearOfCompletion: 2010},
	})
	manager.Compensation = dbmodels.NewJSONType(&dbmodels.Compensation{
		Salary: 120000, PayFrequency: "Monthly",
		BankDetails: dbmodels.BankDetails{BankName: "Metropolis Bank", AccountNumber: "**** **** **** 1234", IfscCode: "METB00001"},
	})
	manager.Documents = dbmodels.NewJSONType([]dbmodels.Document{
		{ID: "doc-1", Name: "Passport", Status: "Verified"},
		{ID: "doc-2", Name: "Degree Certificate", Status: "Submitted"},
		{ID: "doc-3", Name: "Address Proof", Status: "Pending"},
	})

	developer := &users[2]
	developer.PersonalDetails = dbmodels.NewJSONType(&dbmodels.PersonalDetails{
		DateOfBirth: "1992-03-22", Nationality: "Canadian", MaritalStatus: "Single", Gender: "Male",
	})
	developer.ContactNumber = "+1 987-654-3210"
	developer.Address = dbmodels.NewJSONType(&dbmodels.Address{
		Street: "123 Maple Street", City: "Toronto", State: "ON", ZipCode: "M5V 2E9", Country: "Canada",
	})
	developer.Education = dbmodels.NewJSONType([]dbmodels.Education{
		{ID: "edu-2", Degree: "B.Sc. Computer Science", Institution: "University of Toronto", YearOfCompletion: 2014},
	})
	developer.Compensation = dbmodels.NewJSONType(&dbmodels.Compensation{
		Salary: 95000, PayFrequency: "Bi-Weekly",
		BankDetails: dbmodels.BankDetails{BankName: "CIBC", AccountNumber: "**** **** **** 5678", IfscCode: "CIBCCATT"},
	})
	developer.Documents = dbmodels.NewJSONType([]dbmodels.Document{
		{ID: "doc-4", Name: "Work Permit", Status: "Verified"},
		{ID: "doc-5", Name: "Address Proof", Status: "Submitted"},
	})

	if err := tx.Create(&users).Error; err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcryptCost)
	if err != nil {
		return err
	}
	passwords := make([]dbmodels.UserPassword, 0, len(users))
	for _, user := range users {
		passwords = append(passwords, dbmodels.UserPassword{Email: user.Email, Hash: string(hash)})
	}
	return tx.Create(&passwords).Error
}

func seedProjects(tx *gorm.DB) error {
	project := func(id, name, description string, departmentIDs []string, deadline string, priority models.Priority, estimated float64) dbmodels.Project {
		rec := dbmodels.Project{
			BaseModel:     dbmodels.BaseModel{ID: id},
			Name:          name,
			Description:   description,
			ManagerID:     "2",
			CompanyID:     "comp-1",
			Deadline:      deadline,
			Priority:      priority,
			EstimatedTime: estimated,
		}
		for _, departmentID := range departmentIDs {
			rec.Departments = append(rec.Departments, dbmodels.ProjectDepartment{ProjectID: id, DepartmentID: departmentID})
		}
		return rec
	}
	projects := []dbmodels.Project{
		project("proj-1", "Q3 Marketing Campaign", "A comprehensive marketing campaign for the third quarter.",
			[]string{"dept-5"}, "2025-09-30", models.PriorityHigh, 120),
		project("proj-2", "New Website Launch", "Launch of the new corporate website with e-commerce functionality.",
			[]string{"dept-7", "dept-5"}, "2025-09-15", models.PriorityHigh, 300),
		project("proj-3", "HR Portal Update", "Update the internal HR portal with new features for employees.",
			[]string{"dept-3", "dept-7"}, "2024-09-15", models.PriorityMedium, 80),
		project("proj-4", "Mobile App V2", "Version 2 of the customer-facing mobile application.",
			[]string{"dept-7"}, "2024-10-31", models.PriorityMedium, 250),
	}
	projects[1].Roadmap = []dbmodels.ProjectMilestone{
		{BaseModel: dbmodels.BaseModel{ID: "m1"}, Position: 0, Name: "Phase 1: Discovery & Planning",
			Description: "Gather requirements and plan project structure.", StartDate: "2025-07-01", EndDate: "2025-07-15", Status: models.MilestoneCompleted},
		{BaseModel: dbmodels.BaseModel{ID: "m2"}, Position: 1, Name: "Phase 2: Design",
			Description: "UI/UX design and mockups.", StartDate: "2025-07-16", EndDate: "2025-08-05", Status: models.MilestoneCompleted},
		{BaseModel: dbmodels.BaseModel{ID: "m3"}, Position: 2, Name: "Phase 3: Development",
			Description: "Frontend and backend development.", StartDate: "2025-08-06", EndDate: "2025-09-01", Status: models.MilestoneInProgress},
		{BaseModel: dbmodels.BaseModel{ID: "m4"}, Position: 3, Name: "Phase 4: Testing & Deployment",
			Description: "QA, UAT, and final launch.", StartDate: "2025-09-02", EndDate: "2025-09-15", Status: models.MilestonePending},
	}
	return tx.Create(&projects).Error
}

func seedTasks(tx *gorm.DB, now time.Time) error {
	task := func(id, name, description, dueDate, projectID, assigneeID string, status models.TaskStatus,
		category string, priority models.Priority, tags []string, estimated float64) dbmodels.Task {
		rec := dbmodels.Task{
			BaseModel:     dbmodels.BaseModel{ID: id},
			Name:          name,
			Description:   description,
			DueDate:       dueDate,
			ProjectID:     projectID,
			Status:        status,
			Category:      category,
			Priority:      priority,
			Tags:          dbmodels.NewStringList(tags),
			EstimatedTime: estimated,
		}
		if assigneeID != "" {
			rec.AssigneeID = &assigneeID
		}
		return rec
	}
	blockedBy := func(rec *dbmodels.Task, userID, reason string, ago time.Duration) {
		rec.DependencyUserID = &userID
		rec.DependencyReason = reason
		rec.DependencyLogs = []dbmodels.TaskDependencyLog{{
			BaseModel:          dbmodels.BaseModel{CreatedAt: now.Add(-ago)},
			AuthorID:           "2",
			Action:             models.DependencySet,
			Reason:             reason,
			DependencyOnUserID: userID,
		}}
	}
	tasks := []dbmodels.Task{
		task("task-1", "Draft campaign brief", "Create the initial brief document for the Q3 campaign.", "2025-08-10", "proj-1", "3",
			models.TaskCompleted, "Planning", models.PriorityHigh, []string{"brief", "marketing", "q3"}, 8),
		task("task-2", "Design social media assets", "Create graphics for Facebook, Twitter, and Instagram.", "2025-08-15", "proj-1", "4",
			models.TaskCompleted, "Design", models.PriorityMedium, []string{"graphics", "social media"}, 16),
		task("task-3", "Develop ad copy", "Write compelling copy for all digital ads.", "2025-08-20", "proj-1", "3",
			models.TaskInProgress, "Content", models.PriorityMedium, []string{"copywriting", "ads"}, 12),
		task("task-4", "Schedule posts", "Use the scheduling tool to plan all posts for the month.", "2025-08-25", "proj-1", "5",
			models.TaskOnHold, "Execution", models.PriorityLow, []string{"scheduling", "social media"}, 4),
		task("task-5", "Finalize homepage design", "Get final approval on the new homepage mockups.", "2025-08-05", "proj-2", "4",
			models.TaskCompleted, "Design", models.PriorityHigh, []string{"ui", "ux", "website"}, 24),
		task("task-6", "Develop backend API", "Build out all necessary endpoints for the website.", "2025-09-01", "proj-2", "5",
			models.TaskInProgress, "Development", models.PriorityHigh, []string{"api", "backend"}, 80),
		task("task-7", "User acceptance testing", "Conduct UAT with a focus group.", "2025-09-10", "proj-2", "6",
			models.TaskOnHold, "QA", models.PriorityMedium, []string{"testing", "uat"}, 20),
		task("task-8", "Deploy to production", "Push the final code to the live servers.", "2025-09-15", "proj-2", "5",
			models.TaskTodo, "DevOps", models.PriorityHigh, []string{"deployment", "production"}, 8),
		task("task-9", "Create User Documentation", "Develop comprehensive user guides for all dashboards and features.", "2025-08-24", "proj-2", "",
			models.TaskTodo, "Documentation", models.PriorityMedium, []string{"documentation", "user", "guides"}, 16),
		task("task-10", "Gather requirements", "Meet with stakeholders to define project scope.", "2024-07-25", "proj-3", "3",
			models.TaskCompleted, "Planning", models.PriorityHigh, []string{"requirements", "stakeholders"}, 10),
		task("task-11", "Create wireframes", "Design the low-fidelity wireframes for the new portal.", "2024-08-05", "proj-3", "4",
			models.TaskCompleted, "Design", models.PriorityMedium, []string{"wireframes", "ux"}, 15),
		task("task-12", "Implement new features", "Code the new features as per the requirements.", "2024-09-01", "proj-3", "",
			models.TaskTodo, "Development", models.PriorityHigh, []string{"coding", "features"}, 40),
		task("task-13", "Review and deploy", "Code review and deployment of the HR portal updates.", "2024-09-15", "proj-3", "6",
			models.TaskTodo, "DevOps", models.PriorityMedium, []string{"review", "deploy"}, 8),
		task("task-14", "Plan new features", "Roadmap planning for V2 of the mobile app.", "2024-08-30", "proj-4", "7",
			models.TaskInProgress, "Planning", models.PriorityHigh, []string{"roadmap", "mobile"}, 30),
	}
	tasks[2].Notes = []dbmodels.TaskNote{
		{BaseModel: dbmodels.BaseModel{ID: "note-1", CreatedAt: now.Add(-48 * time.Hour)}, AuthorID: "3",
			Content: "Initial drafts are done. Waiting for feedback from Sarah."},
		{BaseModel: dbmodels.BaseModel{ID: "note-2", CreatedAt: now.Add(-24 * time.Hour)}, AuthorID: "2",
			Content: "Good start. Let's refine the headline for ad set A."},
	}
	blockedBy(&tasks[3], "4", "Awaiting approval on ad copy from Sarah Chen.", 72*time.Hour)
	blockedBy(&tasks[6], "2", "Waiting for manager to provide the list of UAT participants.", 5*24*time.Hour)
	return tx.Create(&tasks).Error
}

func seedAttendance(tx *gorm.DB, now time.Time) error {
	days := []struct {
		day     int
		userIDs []string
	}{
		{1, []string{"3", "4", "5", "6"}},
		{2, []string{"3", "4", "7"}},
		{3, []string{"3", "4", "5", "6", "7"}},
		{4, []string{"4", "5", "6"}},
		{5, []string{"3", "5", "6", "7"}},
		{8, []string{"3", "4", "5", "6"}},
		{9, []string{"3", "4", "7"}},
		{10, []string{"3", "4", "5", "6", "7"}},
		{11, []string{"4", "5", "6"}},
		{12, []string{"3", "5", "6", "7"}},
		{15, []string{"3", "4", "5", "6"}},
		{16, []string{"3", "4", "7"}},
		{17, []string{"3", "4", "5", "6", "7"}},
		{18, []string{"4", "5", "6"}},
		{19, []string{"3", "5", "6", "7"}},
	}
	list := []dbmodels.Attendance{}
	for _, day := range days {
		date := time.Date(now.Year(), now.Month(), day.day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		for _, userID := range day.userIDs {
			list = append(list, dbmodels.Attendance{UserID: userID, Date: date})
		}
	}
	return tx.Create(&list).Error
}

func seedOnboarding(tx *gorm.DB, now time.Time) error {
	rec := dbmodels.OnboardingSubmission{
		BaseModel:           dbmodels.BaseModel{ID: "sub-1"},
		SubmissionDate:      now.Add(-3 * 24 * time.Hour),
		Email:               "new.intern@university.edu",
		FullName:            "Alex Ray",
		GuardianName:        "John Ray",
		DateOfBirth:         "2003-05-12",
		Gender:              models.GenderMale,
		Phone:               "123-456-7890",
		AltPhone:            "098-765-4321",
		Address:             "456 University Ave, College Town, USA 12345",
		AddressProof:        "address_proof.pdf",
		GovtID:              "1234 5678 9012",
		CollegeName:         "State University of Technology",
		GradYear:            2026,
		Cgpa:                "8.8 / 10",
		CollegeCertificates: "transcript.pdf",
		CollegeID:           "college_id.jpg",
		Photo:               "profile_pic.png",
		Signature:           "Alex Ray",
		WorkTime:            "10:00",
		MeetingTime:         "14:00",
		Declaration:         true,
		LanguagesKnown:      dbmodels.NewStringList([]string{"English", "Hindi"}),
		Status:              models.OnboardingPendingReview,
	}
	return tx.Create(&rec).Error
}

func seedChat(tx *gorm.DB, now time.Time) error {
	participants := func(conversationID string, adminID string, userIDs ...string) []dbmodels.ChatParticipant {
		result := make([]dbmodels.ChatParticipant, 0, len(userIDs))
		for _, userID := range userIDs {
			result = append(result, dbmodels.ChatParticipant{
				ConversationID: conversationID,
				UserID:         userID,
				IsAdmin:        userID == adminID,
			})
		}
		return result
	}
	conversations := []dbmodels.ChatConversation{
		{BaseModel: dbmodels.BaseModel{ID: "conv-1"}, Type: models.ConversationGroup, Name: "Project Marketing",
			Participants: participants("conv-1", "2", "2", "3", "4", "5")},
		{BaseModel: dbmodels.BaseModel{ID: "conv-2"}, Type: models.ConversationGroup, Name: "Website Dev Team",
			Participants: participants("conv-2", "2", "2", "4", "5", "6")},
		{BaseModel: dbmodels.BaseModel{ID: "conv-3"}, Type: models.ConversationDirect,
			Participants: participants("conv-3", "", "1", "2")},
		{BaseModel: dbmodels.BaseModel{ID: "conv-4"}, Type: models.ConversationDirect,
			Participants: participants("conv-4", "", "2", "3")},
	}
	message := func(id, conversationID, senderID, text string, ago time.Duration) dbmodels.ChatMessage {
		return dbmodels.ChatMessage{
			BaseModel:      dbmodels.BaseModel{ID: id, CreatedAt: now.Add(-ago)},
			ConversationID: conversationID,
			SenderID:       senderID,
			Text:           text,
		}
	}
	messages := []dbmodels.ChatMessage{
		message("msg-1", "conv-1", "2", "Hey team, let's sync up on the Q3 campaign status.", 2*time.Hour),
		message("msg-2", "conv-1", "3", "Sounds good. My ad copy drafts are ready for review.", 90*time.Minute),
		message("msg-3", "conv-1", "4", "I've uploaded the first batch of social media assets to the drive.", 55*time.Minute),
		message("msg-4", "conv-3", "1", "Can I get a high-level overview of the Mobile App V2 progress?", 30*time.Minute),
		message("msg-5", "conv-4", "2", "How are you doing with the campaign brief task?", 10*time.Minute),
		message("msg-6", "conv-4", "3", "It's completed! I marked it in the system.", 8*time.Minute),
	}
	// messages are ordered by time, so the last one per conversation wins
	for idx := range conversations {
		conv := &conversations[idx]
		for _, msg := range messages {
			if msg.ConversationID != conv.ID {
				continue
			}
			msgID, sentAt := msg.ID, msg.CreatedAt
			conv.LastMessageID = &msgID
			conv.LastMessageSenderID = msg.SenderID
			conv.LastMessageText = msg.Text
			conv.LastMessageAt = &sentAt
		}
	}
	if err := tx.Create(&conversations).Error; err != nil {
		return err
	}
	return tx.Create(&messages).Error
}
