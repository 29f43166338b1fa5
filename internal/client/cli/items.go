package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/foundlab/lostfound/internal/client/guard"
	"github.com/foundlab/lostfound/internal/client/models"
)

func (a *App) Items(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewItems, func(ctx context.Context) error {
		items, err := a.items.All(ctx)
		if err != nil {
			return err
		}
		renderItems(items)
		return nil
	})
}

func (a *App) ShowItem(ctx context.Context, id int64) error {
	return a.navigate(ctx, guard.ViewItems, func(ctx context.Context) error {
		item, err := a.items.Get(ctx, id)
		if err != nil {
			return err
		}
		renderItemDetail(item)
		return nil
	})
}

func (a *App) Search(ctx context.Context, query string) error {
	return a.navigate(ctx, guard.ViewItems, func(ctx context.Context) error {
		items, err := a.items.Search(ctx, query)
		if err != nil {
			return err
		}
		renderItems(items)
		return nil
	})
}

func (a *App) Category(ctx context.Context, category string) error {
	return a.navigate(ctx, guard.ViewItems, func(ctx context.Context) error {
		items, err := a.items.ByCategory(ctx, category)
		if err != nil {
			return err
		}
		renderItems(items)
		return nil
	})
}

func (a *App) FilterStatus(ctx context.Context, status models.ItemStatus) error {
	return a.navigate(ctx, guard.ViewItems, func(ctx context.Context) error {
		items, err := a.items.ByStatus(ctx, status)
		if err != nil {
			return err
		}
		renderItems(items)
		return nil
	})
}

func (a *App) MyItems(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewMyItems, func(ctx context.Context) error {
		items, err := a.items.Mine(ctx)
		if err != nil {
			return err
		}
		renderItems(items)
		return nil
	})
}

// promptItemForm collects the report form fields interactively. When editing,
// current holds the existing values and empty input keeps them.
func (a *App) promptItemForm(current *models.Item) (models.ItemForm, error) {
	var form models.ItemForm
	if current != nil {
		form = models.ItemForm{
			Title:       current.Title,
			Description: current.Description,
			Category:    current.Category,
			Location:    current.Location,
			Status:      current.Status,
			ContactInfo: current.ContactInfo,
			ImageURL:    current.ImageURL,
		}
	}

	ask := func(prompt, existing string) (string, error) {
		if existing != "" {
			v, err := getOptionalText(a.reader, fmt.Sprintf("%s [%s]", prompt, existing), os.Stdout)
			if err != nil {
				return "", err
			}
			if v == "" {
				return existing, nil
			}
			return v, nil
		}
		return getSimpleText(a.reader, prompt, os.Stdout)
	}

	var err error
	if form.Title, err = ask("Title", form.Title); err != nil {
		return form, err
	}
	if form.Description, err = ask("Description", form.Description); err != nil {
		return form, err
	}

	printlnFn("Categories:", models.Categories)
	if form.Category, err = ask("Category", form.Category); err != nil {
		return form, err
	}
	if form.Location, err = ask("Location", form.Location); err != nil {
		return form, err
	}

	if current == nil {
		status, err := getChoice(a.reader, "Is the item lost or found?",
			[]string{string(models.ItemLost), string(models.ItemFound)}, os.Stdout)
		if err != nil {
			return form, err
		}
		form.Status = models.ItemStatus(status)
	}

	if form.ContactInfo, err = ask("Contact info", form.ContactInfo); err != nil {
		return form, err
	}
	imageURL, err := getOptionalText(a.reader, "Image URL", os.Stdout)
	if err != nil {
		return form, err
	}
	if imageURL != "" {
		form.ImageURL = imageURL
	}

	return form, nil
}

func (a *App) Report(ctx context.Context) error {
	return a.navigate(ctx, guard.ViewReport, func(ctx context.Context) error {
		form, err := a.promptItemForm(nil)
		if err != nil {
			return err
		}

		item, err := a.items.Report(ctx, form)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Reported item #%d (%s).", item.ID, item.Status))
		return nil
	})
}

func (a *App) Edit(ctx context.Context, id int64) error {
	return a.navigate(ctx, guard.ViewManageItems, func(ctx context.Context) error {
		current, err := a.items.Get(ctx, id)
		if err != nil {
			return err
		}

		form, err := a.promptItemForm(&current)
		if err != nil {
			return err
		}

		item, err := a.items.Update(ctx, id, form)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Updated item #%d.", item.ID))
		return nil
	})
}

func (a *App) Mark(ctx context.Context, id int64, status models.ItemStatus) error {
	return a.navigate(ctx, guard.ViewItems, func(ctx context.Context) error {
		item, err := a.items.Mark(ctx, id, status)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Item #%d is now %s.", item.ID, item.Status))
		return nil
	})
}

func (a *App) RemoveItem(ctx context.Context, id int64) error {
	return a.navigate(ctx, guard.ViewManageItems, func(ctx context.Context) error {
		if err := a.items.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Deleted item #%d.", id))
		return nil
	})
}
