package testimonial

import "time"

// Testimonial is visitor feedback. Submissions start unapproved and only
// show up publicly after staff review.
type Testimonial struct {
	ID         int       `db:"id" json:"id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Content    string    `db:"content" json:"content"`
	Rating     int       `db:"rating" json:"rating"`
	IsApproved bool      `db:"is_approved" json:"is_approved"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type CreateTestimonialRequest struct {
	AuthorName string `json:"author_name" binding:"required,min=2,max=100"`
	Content    string `json:"content" binding:"required,min=10,max=2000"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
}
