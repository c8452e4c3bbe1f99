package seed

import (
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/models"
	"gorm.io/datatypes"
)

func options(values ...string) datatypes.JSONSlice[string] {
	return datatypes.NewJSONSlice(values)
}

// seedExams returns the built-in exam definitions. Question IDs are
// assigned by the database; the option index marked correct is part of
// the exam payload served to the taker.
func seedExams() []*models.Exam {
	return []*models.Exam{
		{
			Code:              "INT-2025-001",
			Title:             "Software Engineering Interview Screening",
			Description:       "General screening covering SQL, web fundamentals and data structures.",
			DurationMinutes:   45,
			PassingPercentage: 60,
			Questions: []models.Question{
				{
					Section:      "SQL",
					Text:         "Which SQL clause filters rows after aggregation?",
					Options:      options("WHERE", "HAVING", "GROUP BY", "ORDER BY"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "SQL",
					Text:         "Which JOIN returns all rows from the left table and matching rows from the right?",
					Options:      options("INNER JOIN", "RIGHT JOIN", "LEFT JOIN", "CROSS JOIN"),
					CorrectIndex: 2,
					Marks:        1,
				},
				{
					Section:      "SQL",
					Text:         "What does a UNIQUE constraint guarantee?",
					Options:      options("Non-null values", "No duplicate values in the column", "Faster inserts", "Automatic indexing of all columns"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "SQL",
					Text:         "Which statement removes all rows from a table but keeps its structure?",
					Options:      options("DROP TABLE", "DELETE CASCADE", "TRUNCATE TABLE", "ALTER TABLE"),
					CorrectIndex: 2,
					Marks:        1,
				},
				{
					Section:      "Web Development",
					Text:         "Which HTTP status code indicates a resource was not found?",
					Options:      options("400", "401", "404", "500"),
					CorrectIndex: 2,
					Marks:        1,
				},
				{
					Section:      "Web Development",
					Text:         "Which HTTP method is idempotent by definition?",
					Options:      options("POST", "PUT", "PATCH", "CONNECT"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "Web Development",
					Text:         "What does CORS control?",
					Options:      options("Database connections", "Cross-origin browser requests", "Server-side caching", "Session storage"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "Web Development",
					Text:         "Which header carries the media type of an HTTP response body?",
					Options:      options("Accept", "Content-Type", "Content-Length", "Transfer-Encoding"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "Data Structures",
					Text:         "What is the average-case lookup complexity of a hash table?",
					Options:      options("O(1)", "O(log n)", "O(n)", "O(n log n)"),
					CorrectIndex: 0,
					Marks:        2,
				},
				{
					Section:      "Data Structures",
					Text:         "Which data structure evaluates elements in LIFO order?",
					Options:      options("Queue", "Stack", "Heap", "Linked list"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "Data Structures",
					Text:         "A binary search requires its input to be:",
					Options:      options("Hashed", "Sorted", "Balanced", "Distinct"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "Data Structures",
					Text:         "Which structure backs a breadth-first traversal?",
					Options:      options("Stack", "Priority queue", "Queue", "Set"),
					CorrectIndex: 2,
					Marks:        2,
				},
				{
					Section:      "General Programming",
					Text:         "What does immutability of a value mean?",
					Options:      options("It is stored on the stack", "It cannot change after creation", "It is garbage collected early", "It is thread-local"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "General Programming",
					Text:         "Which of these best describes idempotency of an operation?",
					Options:      options("It never fails", "Repeating it yields the same outcome as running it once", "It runs in constant time", "It requires no authentication"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "General Programming",
					Text:         "A race condition occurs when:",
					Options:      options("Two processes deadlock", "The outcome depends on unsynchronized timing of concurrent operations", "A loop never terminates", "Memory is leaked under load"),
					CorrectIndex: 1,
					Marks:        2,
				},
			},
		},
		{
			Code:              "DB-2025-002",
			Title:             "Database Fundamentals Assessment",
			Description:       "Relational model, transactions and indexing basics.",
			DurationMinutes:   30,
			PassingPercentage: 50,
			Questions: []models.Question{
				{
					Section:      "Transactions",
					Text:         "Which property of ACID guarantees that committed changes survive a crash?",
					Options:      options("Atomicity", "Consistency", "Isolation", "Durability"),
					CorrectIndex: 3,
					Marks:        1,
				},
				{
					Section:      "Transactions",
					Text:         "A transaction that sees only data committed before it started runs under:",
					Options:      options("Read uncommitted", "Snapshot isolation", "Dirty read", "Cascade isolation"),
					CorrectIndex: 1,
					Marks:        2,
				},
				{
					Section:      "Indexing",
					Text:         "A B-tree index primarily speeds up:",
					Options:      options("Full-table scans", "Range and equality lookups", "Bulk inserts", "Schema migrations"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "Indexing",
					Text:         "Adding many indexes to a table tends to:",
					Options:      options("Slow down writes", "Slow down reads", "Reduce storage use", "Disable constraints"),
					CorrectIndex: 0,
					Marks:        1,
				},
				{
					Section:      "Relational Model",
					Text:         "A foreign key enforces:",
					Options:      options("Uniqueness", "Referential integrity", "Non-null values", "Check constraints"),
					CorrectIndex: 1,
					Marks:        1,
				},
				{
					Section:      "Relational Model",
					Text:         "Normalization primarily aims to:",
					Options:      options("Speed up joins", "Reduce data redundancy", "Increase row width", "Avoid transactions"),
					CorrectIndex: 1,
					Marks:        1,
				},
			},
		},
	}
}
