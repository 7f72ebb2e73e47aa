package models

// Faq представляет запись вопрос-ответ.
// Связи с автором нет: любой админ может редактировать любую запись.
type Faq struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
