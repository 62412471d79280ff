package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển string thành ObjectID.
// Trả về zero ObjectID nếu chuỗi không hợp lệ.
func String2ObjectID(s string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

// ObjectID2String chuyển ObjectID thành chuỗi hex.
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}
