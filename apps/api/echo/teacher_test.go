package echoapi

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CH-Shireesha/teacher-management/core/teacher"
)

func createTeacher(t *testing.T, repo teacher.Repository, id, name, email, role string) teacher.Teacher {
	t.Helper()
	now := time.Now().UTC()
	tchr, err := repo.CreateTeacher(teacher.Teacher{
		ID:         id,
		FullName:   name,
		Email:      email,
		Role:       role,
		Salary:     decimal.NewFromInt(45),
		SalaryType: teacher.SalaryHourly,
		PrivateQualifications: []teacher.PrivateQualification{
			{ID: id + "-q1", Subject: "Piano", HourlyRate: decimal.NewFromInt(50)},
		},
		Status:    teacher.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("createTeacher() failed: %v", err)
	}
	return tchr
}

func newTeacherBody() map[string]interface{} {
	return map[string]interface{}{
		"full_name":             "Priya Sharma",
		"email":                 "priya.sharma@gmail.com",
		"phone_number":          "+91 98765 43210",
		"role":                  "Piano Teacher",
		"date_of_birth":         "1985-03-15T00:00:00Z",
		"address":               "123 Banjara Hills, Hyderabad",
		"highest_qualification": "Masters in Music Performance",
		"salary":                45,
		"salary_type":           "hourly",
		"private_qualifications": []map[string]interface{}{
			{"subject": "Piano", "hourly_rate": 50},
		},
	}
}

func Test_teacherApi_teacherCreate(t *testing.T) {
	app := setup(t)

	rec := app.request(t, http.MethodPost, "/v1/teachers", marshal(t, newTeacherBody()))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got teacher.Teacher
	decode(t, rec, &got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Priya Sharma", got.FullName)
	assert.Equal(t, teacher.StatusActive, got.Status, "new teachers start active")
	assert.False(t, got.JoinedDate.IsZero(), "joined date defaults to now")
	require.Len(t, got.PrivateQualifications, 1)
	assert.Equal(t, "Piano", got.PrivateQualifications[0].Subject)
}

func Test_teacherApi_teacherCreate_validation(t *testing.T) {
	app := setup(t)

	body := newTeacherBody()
	delete(body, "full_name")
	body["email"] = "not-an-email"

	rec := app.request(t, http.MethodPost, "/v1/teachers", marshal(t, body))
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	fields, ok := decodeErr(t, rec).Error.(map[string]interface{})
	require.True(t, ok, "validation errors come back as a field map: %s", rec.Body.String())
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "email")
}

func Test_teacherApi_teacherCreate_duplicateEmail(t *testing.T) {
	app := setup(t)
	createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya.sharma@gmail.com", "Piano Teacher")

	rec := app.request(t, http.MethodPost, "/v1/teachers", marshal(t, newTeacherBody()))
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	fields, ok := decodeErr(t, rec).Error.(map[string]interface{})
	require.True(t, ok, rec.Body.String())
	assert.Contains(t, fields, "email")
}

func Test_teacherApi_teacherQuery(t *testing.T) {
	app := setup(t)
	priya := createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya@x.com", "Piano Teacher")
	rajesh := createTeacher(t, app.teacherRepo, "2", "Rajesh Kumar", "rajesh@x.com", "Guitar Teacher")
	anjali := createTeacher(t, app.teacherRepo, "3", "Anjali Patel", "anjali@x.com", "Vocal Teacher")

	path := func(search, role string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if role != "" {
			v.Add("role", role)
		}
		if len(v) == 0 {
			return "/v1/teachers"
		}
		return "/v1/teachers?" + v.Encode()
	}

	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{name: "all", path: path("", ""), wantIDs: []string{priya.ID, rajesh.ID, anjali.ID}},
		{name: "role=all", path: path("", "all"), wantIDs: []string{priya.ID, rajesh.ID, anjali.ID}},
		{name: "search=piano", path: path("piano", ""), wantIDs: []string{priya.ID}},
		{name: "search=guitar", path: path("guitar", ""), wantIDs: []string{rajesh.ID}},
		{name: "search (unknown)", path: path("drums", ""), wantIDs: []string{}},
		{name: "search by email", path: path("anjali@x", ""), wantIDs: []string{anjali.ID}},
		{name: "role filter", path: path("", "vocal"), wantIDs: []string{anjali.ID}},
		{name: "search AND role", path: path("teacher", "guitar"), wantIDs: []string{rajesh.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request(t, http.MethodGet, tt.path)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got []teacher.Teacher
			decode(t, rec, &got)
			ids := make([]string, len(got))
			for i, tchr := range got {
				ids[i] = tchr.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func Test_teacherApi_teacherRetrieve(t *testing.T) {
	app := setup(t)
	priya := createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya@x.com", "Piano Teacher")

	rec := app.request(t, http.MethodGet, "/v1/teachers/1")
	require.Equal(t, http.StatusOK, rec.Code)
	var got teacher.Teacher
	decode(t, rec, &got)
	assert.Equal(t, priya.FullName, got.FullName)

	rec = app.request(t, http.MethodGet, "/v1/teachers/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_teacherApi_teacherUpdate(t *testing.T) {
	app := setup(t)
	createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya@x.com", "Piano Teacher")

	body := marshal(t, map[string]interface{}{"role": "Senior Piano Teacher", "salary": 60})
	rec := app.request(t, http.MethodPut, "/v1/teachers/1", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got teacher.Teacher
	decode(t, rec, &got)
	assert.Equal(t, "Senior Piano Teacher", got.Role)
	assert.True(t, decimal.NewFromInt(60).Equal(got.Salary))
	assert.Equal(t, "Priya Sharma", got.FullName, "unset fields stay put")

	rec = app.request(t, http.MethodPut, "/v1/teachers/999", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.request(t, http.MethodPut, "/v1/teachers/1", marshal(t, map[string]interface{}{"email": "nope"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_teacherApi_teacherSchedule(t *testing.T) {
	app := setup(t)
	createTeacher(t, app.teacherRepo, "1", "Priya Sharma", "priya@x.com", "Piano Teacher")
	err := app.teacherRepo.CreateScheduleSessions("1",
		teacher.ScheduleSession{Day: "Monday", Time: "9:00 AM", Duration: 60, Subject: "Piano", Type: teacher.SessionPrivate},
		teacher.ScheduleSession{Day: "Monday", Time: "2:00 PM", Duration: 90, Subject: "Piano Group", Type: teacher.SessionGroup},
	)
	require.NoError(t, err)

	rec := app.request(t, http.MethodGet, "/v1/teachers/1/schedule")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got scheduleResponse
	decode(t, rec, &got)
	assert.Len(t, got.Days, 7)
	assert.Len(t, got.TimeSlots, 15)
	assert.Len(t, got.Sessions, 2)
	require.Contains(t, got.Cells, "Monday 9:00 AM")
	assert.Equal(t, "Piano", got.Cells["Monday 9:00 AM"][0].Subject)
	assert.NotContains(t, got.Cells, "Tuesday 9:00 AM", "empty cells are omitted")

	rec = app.request(t, http.MethodGet, "/v1/teachers/999/schedule")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// a teacher without sessions has an empty grid, not an error
	createTeacher(t, app.teacherRepo, "2", "Rajesh Kumar", "rajesh@x.com", "Guitar Teacher")
	rec = app.request(t, http.MethodGet, "/v1/teachers/2/schedule")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &got)
	assert.Empty(t, got.Sessions)
}
