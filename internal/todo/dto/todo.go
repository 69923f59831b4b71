package dto

type CreateListInput struct {
	Title string `json:"title"`
}

type UpdateListInput struct {
	Title *string `json:"title"`
}

type CreateTaskInput struct {
	Title string `json:"title"`
}

type UpdateTaskInput struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
