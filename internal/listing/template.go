package listing

// Reply texts sent back over the channel. Formatting targets WhatsApp
// (asterisks render bold).
const (
	replySaved         = "✅ Success! Your warehouse data has been saved with ID: *%d*."
	replyClosed        = "✅ All done! Your warehouse data has been saved with ID: *%d*."
	replyDraftCreated  = "✅ Data received! Please send your media now. Reply *close* when you are done, or *cancel* to discard."
	replyMediaReceived = "📸 Image received (%d so far). Send more, or reply *close* to finish."
	replyCanceled      = "❌ Submission canceled. Nothing was saved."
	replyInProgress    = "⚠️ A submission is already in progress. Send media, or reply *close* / *cancel*."
	replyNoActive      = "No active submission to close or cancel. Send a filled template to start a new one."
	replyError         = "❌ Error: We couldn't process your data.\n\n*Reason*: %s\n\nPlease correct the message and try again."

	expiredNotice = "⏰ Your previous submission session expired and was discarded."
)

// fieldTemplate is the blank form sent when a submitter asks for help or
// sends an empty message with no draft open.
const fieldTemplate = `📋 *New Warehouse Submission*

Copy the template below, fill in your details, and send it back:

Warehouse Owner Type:
Warehouse Type:
Address:
Google Location:
City:
State:
Postal Code:
Contact Person:
Contact Number:
Total Space:
Offered Space:
Number of Docks:
Clear Height:
Compliances:
Other Specifications:
Rate Per Sqft:
Availability:
Uploaded By:
Is Broker (y/n)?:
Fire NOC Available:
Fire Safety Measures:
Land Type:
Vaastu Compliance:
Approach Road Width:
Dimensions:
Parking/Docking Space:
Pollution Zone:
Power (in kva):
Media Available (y/n):`

// Template returns the blank submission form.
func Template() string {
	return fieldTemplate
}
