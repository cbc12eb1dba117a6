package services

import (
	"log"

	"tomyumkitchen/entity"
)

type CatalogService struct {
	Repo DishSource
}

func NewCatalogService(repo DishSource) *CatalogService {
	return &CatalogService{Repo: repo}
}

// Dishes never fails: when the collection is unreachable or empty the bundled
// sample menu is served instead. category == "" (or すべて) means everything;
// filtering happens here, the way the app filters its loaded list.
func (s *CatalogService) Dishes(category string) []entity.Dish {
	dishes, err := s.Repo.ListDishes()
	if err != nil || len(dishes) == 0 {
		if err != nil {
			log.Println("dish fetch failed, using bundled menu:", err)
		}
		dishes = entity.SampleDishes()
	}

	if category == "" || category == "すべて" {
		return dishes
	}
	out := make([]entity.Dish, 0, len(dishes))
	for _, d := range dishes {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

func (s *CatalogService) Categories() []entity.Category {
	cats, err := s.Repo.ListCategories()
	if err != nil || len(cats) == 0 {
		if err != nil {
			log.Println("category fetch failed, using bundled set:", err)
		}
		cats = entity.SampleCategories()
	}
	return cats
}

func (s *CatalogService) Dish(id uint) (*entity.Dish, error) {
	return s.Repo.GetDish(id)
}
