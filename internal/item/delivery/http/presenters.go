package http

import (
	"notes-api/internal/item"
	"notes-api/internal/model"
)

// DeletedMessage is the plain-text body of a successful item delete.
const DeletedMessage = "Item was deleted"

// --- Request DTOs ---

// itemReq is shared by create and update. Form keys follow the Item[...] naming of HTML forms.
type itemReq struct {
	Title    *string `json:"item_title"    form:"Item[item_title]"    binding:"omitempty,max=100"`
	Category *string `json:"item_category" form:"Item[item_category]" binding:"omitempty,max=10"`
	Content  *string `json:"item_content"  form:"Item[item_content]"`
	OwnerID  *int64  `json:"item_user_id"  form:"Item[item_user_id]"`
}

func (r itemReq) toCreateInput() item.CreateInput {
	return item.CreateInput{
		Title:    r.Title,
		Category: r.Category,
		Content:  r.Content,
		OwnerID:  r.OwnerID,
	}
}

func (r itemReq) toUpdateInput(id int64) item.UpdateInput {
	return item.UpdateInput{
		ID:       id,
		Title:    r.Title,
		Category: r.Category,
		Content:  r.Content,
		OwnerID:  r.OwnerID,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID       int64   `json:"item_id"`
	Title    *string `json:"item_title"`
	Category *string `json:"item_category"`
	Content  *string `json:"item_content"`
	OwnerID  *int64  `json:"item_user_id,omitempty"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:       it.ID,
		Title:    it.Title,
		Category: it.Category,
		Content:  it.Content,
		OwnerID:  it.UserID,
	}
}

func (h *handler) newCreateResp(out item.CreateOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newDetailResp(out item.DetailOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newUpdateResp(out item.UpdateOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newListResp(out item.ListOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}
