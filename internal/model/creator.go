// internal/model/creator.go
package model

type Creator struct {
    ID     int    `db:"id" json:"id"`
    Name   string `db:"name" json:"name"`
    Handle string `db:"handle" json:"handle"`
    Phone  string `db:"phone" json:"phone"`
}
