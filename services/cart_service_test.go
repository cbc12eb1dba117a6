package services

import (
	"testing"

	"tomyumkitchen/entity"

	"github.com/stretchr/testify/assert"
)

func dish(id uint, name string, price int64) entity.Dish {
	d := entity.Dish{Name: name, Price: price}
	d.ID = id
	return d
}

func TestCartAddMergesSameDish(t *testing.T) {
	cart := NewCartService()
	tomyum := dish(1, "トムヤムクン", 1200)

	cart.Add("s1", tomyum, 1, "")
	cart.Add("s1", tomyum, 2, "")

	lines := cart.Lines("s1")
	assert.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)
	assert.Equal(t, 3, cart.ItemCount("s1"))
	assert.Equal(t, int64(3600), cart.Subtotal("s1"))
}

func TestCartInsertionOrder(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", dish(2, "ガパオライス", 1000), 1, "")
	cart.Add("s1", dish(1, "トムヤムクン", 1200), 1, "")
	cart.Add("s1", dish(3, "パッタイ", 1100), 1, "")
	cart.Add("s1", dish(1, "トムヤムクン", 1200), 1, "")

	var ids []uint
	for _, l := range cart.Lines("s1") {
		ids = append(ids, l.Dish.ID)
	}
	assert.Equal(t, []uint{2, 1, 3}, ids)
}

func TestCartAddZeroQtyMeansOne(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", dish(1, "トムヤムクン", 1200), 0, "")
	assert.Equal(t, 1, cart.ItemCount("s1"))
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", dish(1, "トムヤムクン", 1200), 2, "")

	cart.SetQuantity("s1", 1, 5)
	assert.Equal(t, 5, cart.ItemCount("s1"))

	cart.SetQuantity("s1", 1, 0)
	assert.Empty(t, cart.Lines("s1"))
}

func TestCartRemoveAbsentDishIsNoop(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", dish(1, "トムヤムクン", 1200), 1, "")
	cart.Remove("s1", 99)
	assert.Len(t, cart.Lines("s1"), 1)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	cart := NewCartService()
	cart.Add("s1", dish(1, "トムヤムクン", 1200), 1, "")
	cart.Add("s2", dish(1, "トムヤムクン", 1200), 2, "")

	cart.Clear("s1")
	assert.Empty(t, cart.Lines("s1"))
	assert.Equal(t, 2, cart.ItemCount("s2"))
}
