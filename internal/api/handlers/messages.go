package handlers

// Fixed user-facing messages of the clustering envelope.
const (
	MsgContainersClustered = "Containers Clustered"
	MsgCheckInputs         = "Something Went Wrong. Please Check Out The Inputs"
)
