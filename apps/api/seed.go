package main

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CH-Shireesha/teacher-management/core/payment"
	"github.com/CH-Shireesha/teacher-management/core/teacher"
)

// seedDB loads demo fixtures so the API is explorable out of the box.
// Records go through the repositories directly to keep their fixed ids and
// to avoid emitting activity entries or receipt emails for canned data.
func seedDB(teacherRepo teacher.Repository, paymentRepo payment.Repository) error {
	now := time.Now().UTC()

	teachers := []teacher.Teacher{
		{
			ID:                   "1",
			FullName:             "Priya Sharma",
			Email:                "priya.sharma@gmail.com",
			PhoneNumber:          "+91 98765 43210",
			Role:                 "Piano Teacher",
			DateOfBirth:          date(1985, time.March, 15),
			Address:              "123 Banjara Hills, Hyderabad, Telangana 500034",
			HighestQualification: "Masters in Music Performance",
			Salary:               decimal.NewFromInt(45),
			SalaryType:           teacher.SalaryHourly,
			PrivateQualifications: []teacher.PrivateQualification{
				{ID: "1", Subject: "Piano", HourlyRate: decimal.NewFromInt(50)},
				{ID: "2", Subject: "Music Theory", HourlyRate: decimal.NewFromInt(40)},
			},
			JoinedDate: date(2023, time.January, 15),
			Status:     teacher.StatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:                   "2",
			FullName:             "Rajesh Kumar",
			Email:                "rajesh.kumar@gmail.com",
			PhoneNumber:          "+91 87654 32109",
			Role:                 "Guitar Teacher",
			DateOfBirth:          date(1990, time.July, 22),
			Address:              "456 Jubilee Hills, Hyderabad, Telangana 500033",
			HighestQualification: "Bachelor of Music",
			Salary:               decimal.NewFromInt(3500),
			SalaryType:           teacher.SalaryFixed,
			PrivateQualifications: []teacher.PrivateQualification{
				{ID: "3", Subject: "Guitar", HourlyRate: decimal.NewFromInt(45)},
				{ID: "4", Subject: "Bass Guitar", HourlyRate: decimal.NewFromInt(40)},
			},
			JoinedDate: date(2023, time.February, 1),
			Status:     teacher.StatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:                   "3",
			FullName:             "Anjali Patel",
			Email:                "anjali.patel@gmail.com",
			PhoneNumber:          "+91 76543 21098",
			Role:                 "Vocal Teacher",
			DateOfBirth:          date(1988, time.November, 10),
			Address:              "789 Hitech City, Hyderabad, Telangana 500081",
			HighestQualification: "Masters in Vocal Performance",
			Salary:               decimal.NewFromInt(55),
			SalaryType:           teacher.SalaryHourly,
			PrivateQualifications: []teacher.PrivateQualification{
				{ID: "5", Subject: "Vocals", HourlyRate: decimal.NewFromInt(60)},
				{ID: "6", Subject: "Music Theory", HourlyRate: decimal.NewFromInt(45)},
			},
			JoinedDate: date(2023, time.January, 20),
			Status:     teacher.StatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	for _, t := range teachers {
		if _, err := teacherRepo.CreateTeacher(t); err != nil {
			return err
		}
	}

	sessions := []teacher.ScheduleSession{
		{Day: "Monday", Time: "9:00 AM", Duration: 60, Subject: "Piano", Type: teacher.SessionPrivate},
		{Day: "Monday", Time: "2:00 PM", Duration: 90, Subject: "Piano Group", Type: teacher.SessionGroup},
		{Day: "Tuesday", Time: "10:00 AM", Duration: 60, Subject: "Music Theory", Type: teacher.SessionPrivate},
		{Day: "Wednesday", Time: "9:00 AM", Duration: 60, Subject: "Piano", Type: teacher.SessionPrivate},
		{Day: "Wednesday", Time: "3:00 PM", Duration: 60, Subject: "Piano", Type: teacher.SessionPrivate},
		{Day: "Thursday", Time: "11:00 AM", Duration: 90, Subject: "Piano Group", Type: teacher.SessionGroup},
		{Day: "Friday", Time: "10:00 AM", Duration: 60, Subject: "Music Theory", Type: teacher.SessionPrivate},
		{Day: "Saturday", Time: "9:00 AM", Duration: 60, Subject: "Piano", Type: teacher.SessionPrivate},
		{Day: "Saturday", Time: "11:00 AM", Duration: 60, Subject: "Piano", Type: teacher.SessionPrivate},
	}
	if err := teacherRepo.CreateScheduleSessions("1", sessions...); err != nil {
		return err
	}

	payments := []payment.Payment{
		{
			ID:          "1",
			TeacherID:   "1",
			TeacherName: "Priya Sharma",
			Amount:      decimal.NewFromInt(1200),
			Method:      payment.MethodBankTransfer,
			Date:        now.AddDate(0, 0, -1),
			Status:      payment.StatusCompleted,
			Description: "Monthly salary",
		},
		{
			ID:          "2",
			TeacherID:   "2",
			TeacherName: "Rajesh Kumar",
			Amount:      decimal.NewFromInt(800),
			Method:      payment.MethodDigitalWallet,
			Date:        now.AddDate(0, 0, -2),
			Status:      payment.StatusPending,
			Description: "Bonus payment",
		},
	}
	for _, p := range payments {
		if _, err := paymentRepo.CreatePayment(p); err != nil {
			return err
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
