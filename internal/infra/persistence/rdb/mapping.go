package rdb

import (
	"bookseed/internal/domain/entity"
	"bookseed/internal/infra/persistence/model"
)

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Username: data.Username,
		Email:    data.Email,
	}
}

func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	if data == nil {
		return nil
	}

	return &entity.Author{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Address:         derefString(data.Address),
		ZipCode:         derefString(data.ZipCode),
		Phone:           derefString(data.TelNo),
		RecommendedByID: data.RecommendedByID,
		JoinDate:        data.JoinDate,
		PopularityScore: data.PopularityScore,
		CreatedAt:       data.CreatedAt,
	}
}

func fromAuthorDomain(data *entity.Author) *model.AuthorModel {
	if data == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Address:         optionalString(data.Address),
		ZipCode:         optionalString(data.ZipCode),
		TelNo:           optionalString(data.Phone),
		RecommendedByID: data.RecommendedByID,
		JoinDate:        data.JoinDate,
		PopularityScore: data.PopularityScore,
	}
}

func toPublisherDomain(data *model.PublisherModel) *entity.Publisher {
	if data == nil {
		return nil
	}

	return &entity.Publisher{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		RecommendedByID: data.RecommendedByID,
		JoinDate:        data.JoinDate,
		PopularityScore: data.PopularityScore,
		CreatedAt:       data.CreatedAt,
	}
}

func fromPublisherDomain(data *entity.Publisher) *model.PublisherModel {
	if data == nil {
		return nil
	}

	return &model.PublisherModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		RecommendedByID: data.RecommendedByID,
		JoinDate:        data.JoinDate,
		PopularityScore: data.PopularityScore,
	}
}

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	book := &entity.Book{
		ID:            data.ID,
		Title:         data.Title,
		Genre:         data.Genre,
		PublishedDate: data.PublishedDate,
		AuthorID:      data.AuthorID,
		PublisherID:   data.PublisherID,
		CreatedAt:     data.CreatedAt,
	}
	if data.Price != nil {
		book.Price = *data.Price
	}

	return book
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	price := data.Price

	return &model.BookModel{
		ID:            data.ID,
		Title:         data.Title,
		Genre:         data.Genre,
		Price:         &price,
		PublishedDate: data.PublishedDate,
		AuthorID:      data.AuthorID,
		PublisherID:   data.PublisherID,
	}
}

// optionalString stores empty strings as NULL.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func mapSlice[M any, E any](items []M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}

	return out
}
