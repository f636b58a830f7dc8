package seed

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/app/store"
	"github.com/vikass-pal/campusconnect/internal/pkg/auth"
)

// DefaultPassword is the password every seeded account accepts. Seed data
// exists so the API is browsable on a fresh install; the accounts are not
// meant to survive into production.
const DefaultPassword = "Password123!"

// DefaultData builds the sample catalogue loaded when the store starts
// empty: three users, their study resources and a set of campus events.
func DefaultData(lgr zerolog.Logger) store.Initial {
	lgr.Info().Msg("Building default sample data...")

	hashed, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		// bcrypt only fails on an invalid cost, which is fixed at compile time
		lgr.Error().Err(err).Msg("Failed to hash seed password, seeding accounts without one")
		hashed = ""
	}

	alice := models.User{
		ID:             "1",
		Username:       "alice_chen",
		Email:          "alice@university.edu",
		Password:       hashed,
		FullName:       "Alice Chen",
		Bio:            "Computer Science major passionate about AI and machine learning",
		Skills:         []string{"Python", "JavaScript", "React", "Machine Learning"},
		AcademicYear:   "Third Year",
		ProfilePicture: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		CreatedAt:      ts("2024-01-15T10:00:00Z"),
		UpdatedAt:      ts("2024-01-15T10:00:00Z"),
	}
	bob := models.User{
		ID:             "2",
		Username:       "bob_wilson",
		Email:          "bob@university.edu",
		Password:       hashed,
		FullName:       "Bob Wilson",
		Bio:            "Engineering student and tech enthusiast",
		Skills:         []string{"Java", "C++", "Data Structures", "Algorithms"},
		AcademicYear:   "Second Year",
		ProfilePicture: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		CreatedAt:      ts("2024-01-10T08:30:00Z"),
		UpdatedAt:      ts("2024-01-10T08:30:00Z"),
	}
	sarah := models.User{
		ID:             "3",
		Username:       "sarah_davis",
		Email:          "sarah@university.edu",
		Password:       hashed,
		FullName:       "Sarah Davis",
		Bio:            "Design and UX enthusiast, love creating beautiful interfaces",
		Skills:         []string{"UI/UX Design", "Figma", "Adobe Creative Suite", "Frontend"},
		AcademicYear:   "Fourth Year",
		ProfilePicture: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		CreatedAt:      ts("2024-01-05T14:20:00Z"),
		UpdatedAt:      ts("2024-01-05T14:20:00Z"),
	}

	resources := []models.Resource{
		{
			ID:          "res1",
			Title:       "Complete React.js Cheat Sheet",
			Description: "Comprehensive guide covering React hooks, components, state management, and best practices. Perfect for quick reference during development.",
			Type:        models.ResourceTypePDF,
			FileURL:     "https://example.com/react-cheatsheet.pdf",
			Tags:        []string{"React", "JavaScript", "Frontend", "Web Development"},
			Author:      alice.AuthorRef(),
			Likes:       []string{"2", "3"},
			Comments: []models.Comment{
				{
					ID:        "rc1",
					Content:   "This is incredibly helpful! Thanks for sharing.",
					Author:    bob.AuthorRef(),
					CreatedAt: ts("2024-01-20T10:30:00Z"),
				},
			},
			CreatedAt: ts("2024-01-18T14:15:00Z"),
			UpdatedAt: ts("2024-01-18T14:15:00Z"),
		},
		{
			ID:          "res2",
			Title:       "Data Structures Visualization Tool",
			Description: "Interactive web tool for visualizing common data structures like trees, graphs, and hash tables. Great for understanding algorithms.",
			Type:        models.ResourceTypeLink,
			LinkURL:     "https://visualgo.net/en",
			Tags:        []string{"Data Structures", "Algorithms", "Visualization", "Learning"},
			Author:      bob.AuthorRef(),
			Likes:       []string{"1"},
			CreatedAt:   ts("2024-01-16T09:20:00Z"),
			UpdatedAt:   ts("2024-01-16T09:20:00Z"),
		},
		{
			ID:          "res3",
			Title:       "My Database Design Notes",
			Description: "Personal notes on database design principles, normalization, and SQL optimization techniques from CS 340.",
			Type:        models.ResourceTypeNotes,
			Content:     "Start with entity-relationship modelling, then normalize to 3NF before denormalizing for hot read paths.",
			Tags:        []string{"Database", "SQL", "Design", "Notes"},
			Author:      sarah.AuthorRef(),
			Likes:       []string{"1", "2"},
			Comments: []models.Comment{
				{
					ID:        "rc2",
					Content:   "These notes saved me during the midterm!",
					Author:    alice.AuthorRef(),
					CreatedAt: ts("2024-01-19T16:45:00Z"),
				},
			},
			CreatedAt: ts("2024-01-15T11:30:00Z"),
			UpdatedAt: ts("2024-01-15T11:30:00Z"),
		},
	}

	events := []models.Event{
		{
			ID:           "evt1",
			Title:        "React.js Workshop: Building Modern Web Apps",
			Description:  "Join us for an intensive workshop on React.js where we'll build a complete web application from scratch. Perfect for beginners and intermediate developers looking to enhance their frontend skills.",
			Date:         "2024-02-15",
			Time:         "14:00",
			Location:     "Computer Science Building, Room 301",
			Category:     "workshop",
			MaxAttendees: capacity(30),
			Author:       alice.AuthorRef(),
			Attendees:    []string{"2", "3"},
			Comments: []models.Comment{
				{
					ID:        "c1",
					Content:   "This looks amazing! Can't wait to attend.",
					Author:    bob.AuthorRef(),
					CreatedAt: ts("2024-01-20T09:15:00Z"),
				},
			},
			CreatedAt: ts("2024-01-18T16:30:00Z"),
			UpdatedAt: ts("2024-01-18T16:30:00Z"),
		},
		{
			ID:           "evt2",
			Title:        "AI & Machine Learning Seminar",
			Description:  "Explore the latest trends in artificial intelligence and machine learning. Industry experts will share insights on career opportunities and cutting-edge research.",
			Date:         "2024-02-20",
			Time:         "18:00",
			Location:     "Main Auditorium",
			Category:     "seminar",
			MaxAttendees: capacity(100),
			Author:       bob.AuthorRef(),
			Attendees:    []string{"1", "3"},
			CreatedAt:    ts("2024-01-16T11:45:00Z"),
			UpdatedAt:    ts("2024-01-16T11:45:00Z"),
		},
		{
			ID:           "evt3",
			Title:        "Study Group: Data Structures & Algorithms",
			Description:  "Weekly study group for CS students preparing for technical interviews. We'll solve coding problems and discuss optimal solutions together.",
			Date:         "2024-02-12",
			Time:         "19:00",
			Location:     "Library Study Room B",
			Category:     "study-group",
			MaxAttendees: capacity(15),
			Author:       sarah.AuthorRef(),
			Attendees:    []string{"1"},
			Comments: []models.Comment{
				{
					ID:        "c2",
					Content:   "Perfect timing! I need help with tree algorithms.",
					Author:    alice.AuthorRef(),
					CreatedAt: ts("2024-01-19T13:20:00Z"),
				},
			},
			CreatedAt: ts("2024-01-17T20:10:00Z"),
			UpdatedAt: ts("2024-01-17T20:10:00Z"),
		},
		{
			ID:           "evt4",
			Title:        "Tech Career Fair Networking Event",
			Description:  "Connect with recruiters from top tech companies. Bring your resume and be ready to discuss your projects and career goals.",
			Date:         "2024-02-25",
			Time:         "10:00",
			Location:     "Student Center Ballroom",
			Category:     "career",
			MaxAttendees: capacity(200),
			Author:       alice.AuthorRef(),
			Attendees:    []string{"2"},
			CreatedAt:    ts("2024-01-14T12:00:00Z"),
			UpdatedAt:    ts("2024-01-14T12:00:00Z"),
		},
		{
			ID:           "evt5",
			Title:        "Web Development Bootcamp",
			Description:  "Intensive 3-day bootcamp covering HTML, CSS, JavaScript, and modern frameworks. Perfect for beginners wanting to start their web development journey.",
			Date:         "2024-03-01",
			Time:         "09:00",
			Location:     "Engineering Lab 205",
			Category:     "workshop",
			MaxAttendees: capacity(25),
			Author:       sarah.AuthorRef(),
			Attendees:    []string{"1", "2"},
			Comments: []models.Comment{
				{
					ID:        "c3",
					Content:   "This is exactly what I was looking for!",
					Author:    bob.AuthorRef(),
					CreatedAt: ts("2024-01-21T15:30:00Z"),
				},
			},
			CreatedAt: ts("2024-01-19T09:45:00Z"),
			UpdatedAt: ts("2024-01-19T09:45:00Z"),
		},
		{
			ID:          "evt6",
			Title:       "Pizza & Code Social Night",
			Description: "Casual meetup for computer science students. Enjoy pizza while working on personal projects and meeting fellow developers.",
			Date:        "2024-02-18",
			Time:        "17:30",
			Location:    "CS Lounge",
			Category:    "social",
			Author:      bob.AuthorRef(),
			Attendees:   []string{"1", "3"},
			CreatedAt:   ts("2024-01-15T14:20:00Z"),
			UpdatedAt:   ts("2024-01-15T14:20:00Z"),
		},
	}

	return store.Initial{
		Users:     []models.User{alice, bob, sarah},
		Resources: resources,
		Events:    events,
	}
}

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func capacity(n int) *int {
	return &n
}
